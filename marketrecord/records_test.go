// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketrecord_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/marketrecord"
)

// fixed keys so the packed forms are deterministic
var (
	creatorAccount = &account.Account{
		Test: true,
		PublicKey: []byte{
			0x55, 0xb2, 0x98, 0x88, 0x17, 0xf7, 0xea, 0xec,
			0x37, 0x74, 0x1b, 0x82, 0x44, 0x71, 0x63, 0xca,
			0xaa, 0x5a, 0x9d, 0xb2, 0xb6, 0xf0, 0xce, 0x72,
			0x26, 0x26, 0x33, 0x8e, 0x5e, 0x3f, 0x1a, 0xff,
		},
	}

	buyerAccount = &account.Account{
		Test: true,
		PublicKey: []byte{
			0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
			0x67, 0x07, 0xfa, 0x4b, 0x95, 0x3e, 0x3b, 0x34,
			0x00, 0xe2, 0x72, 0x9f, 0x65, 0x61, 0x16, 0xdd,
			0x7b, 0x01, 0x8d, 0xf3, 0x46, 0x98, 0xbd, 0xc2,
		},
	}
)

func TestPlatformDataPackUnpack(t *testing.T) {
	platform := &marketrecord.PlatformData{
		Authority:         creatorAccount,
		PlatformFee:       1000,
		TotalContentCount: 7,
		TotalSalesVolume:  123456789,
	}

	packed, err := platform.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if marketrecord.PlatformDataTag != packed.Type() {
		t.Fatalf("type: %d  expected: %d", packed.Type(), marketrecord.PlatformDataTag)
	}
	if len(packed) > marketrecord.PlatformDataMaximumSize {
		t.Fatalf("packed size: %d  exceeds maximum: %d", len(packed), marketrecord.PlatformDataMaximumSize)
	}

	unpacked, n, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Fatalf("unpack consumed: %d bytes  expected: %d", n, len(packed))
	}
	if !reflect.DeepEqual(platform, unpacked) {
		t.Fatalf("unpacked: %+v  expected: %+v", unpacked, platform)
	}
}

func TestContentDataPackUnpack(t *testing.T) {
	testList := []marketrecord.ContentData{
		{
			Id:                "song1",
			Creator:           creatorAccount,
			StorageLocator:    "ar123",
			Price:             10000,
			RoyaltyPercentage: 10,
			SalesCount:        0,
			Active:            true,
			CreatedAt:         1700010203,
		},
		{
			Id:                "album-live-set",
			Creator:           creatorAccount,
			StorageLocator:    "mJbeTvnbEvruaUQYUGBUkGhMBPUPpVz3vAR8ZUWFCKA",
			Price:             250000,
			RoyaltyPercentage: 100,
			SalesCount:        42,
			Active:            false,
			CreatedAt:         1700010203,
			RentalEnabled:     true,
			RentalPrice:       2500,
			RentalDuration:    7 * 24 * 3600,
			SubscriptionTier:  2,
		},
	}

	for i, content := range testList {
		content := content
		packed, err := content.Pack()
		if nil != err {
			t.Fatalf("%d: pack error: %s", i, err)
		}
		if len(packed) > marketrecord.ContentDataMaximumSize {
			t.Fatalf("%d: packed size: %d  exceeds maximum: %d", i, len(packed), marketrecord.ContentDataMaximumSize)
		}

		unpacked, n, err := packed.Unpack()
		if nil != err {
			t.Fatalf("%d: unpack error: %s", i, err)
		}
		if len(packed) != n {
			t.Fatalf("%d: unpack consumed: %d bytes  expected: %d", i, n, len(packed))
		}
		if !reflect.DeepEqual(&content, unpacked) {
			t.Fatalf("%d: unpacked: %+v  expected: %+v", i, unpacked, content)
		}
	}
}

func TestContentDataPackValidation(t *testing.T) {
	base := marketrecord.ContentData{
		Id:                "song1",
		Creator:           creatorAccount,
		StorageLocator:    "ar123",
		Price:             10000,
		RoyaltyPercentage: 10,
		Active:            true,
	}

	testList := []struct {
		modify   func(*marketrecord.ContentData)
		expected error
	}{
		{func(c *marketrecord.ContentData) { c.Id = "" }, fault.InvalidContentId},
		{func(c *marketrecord.ContentData) { c.Id = strings.Repeat("x", 65) }, fault.ContentIdTooLong},
		{func(c *marketrecord.ContentData) { c.StorageLocator = "" }, fault.InvalidArweaveId},
		{func(c *marketrecord.ContentData) { c.StorageLocator = strings.Repeat("x", 65) }, fault.StorageLocatorTooLong},
		{func(c *marketrecord.ContentData) { c.Price = 0 }, fault.InvalidPrice},
		{func(c *marketrecord.ContentData) { c.RoyaltyPercentage = 101 }, fault.InvalidRoyaltyPercentage},
		{func(c *marketrecord.ContentData) { c.RentalEnabled = true }, fault.InvalidRentalPrice},
		{func(c *marketrecord.ContentData) { c.RentalEnabled = true; c.RentalPrice = 100 }, fault.InvalidRentalDuration},
		{func(c *marketrecord.ContentData) { c.Creator = nil }, fault.InvalidItem},
	}

	for i, item := range testList {
		content := base
		item.modify(&content)
		_, err := content.Pack()
		if item.expected != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, item.expected)
		}
	}
}

func TestLicenceDataPackUnpack(t *testing.T) {
	contentId := marketrecord.NewContentIdentifier("song1")

	testList := []marketrecord.LicenceData{
		{ // full purchase: no expiration, resale allowed
			Buyer:        buyerAccount,
			ContentId:    contentId,
			Price:        10000,
			Timestamp:    1700010203,
			ResaleRights: true,
			PurchaseType: marketrecord.FullPurchase,
			Expiration:   marketrecord.NoExpiry(),
		},
		{ // rental: expiration present, no resale
			Buyer:        buyerAccount,
			ContentId:    contentId,
			Price:        2500,
			Timestamp:    1700010203,
			ResaleRights: false,
			PurchaseType: marketrecord.Rental,
			Expiration:   marketrecord.ExpiryAt(1700010203 + 7*24*3600),
		},
		{ // expiration present with zero timestamp is not "absent"
			Buyer:        buyerAccount,
			ContentId:    contentId,
			Price:        2500,
			Timestamp:    1700010203,
			PurchaseType: marketrecord.Rental,
			Expiration:   marketrecord.ExpiryAt(0),
		},
	}

	for i, licence := range testList {
		licence := licence
		packed, err := licence.Pack()
		if nil != err {
			t.Fatalf("%d: pack error: %s", i, err)
		}
		if len(packed) > marketrecord.LicenceDataMaximumSize {
			t.Fatalf("%d: packed size: %d  exceeds maximum: %d", i, len(packed), marketrecord.LicenceDataMaximumSize)
		}

		unpacked, n, err := packed.Unpack()
		if nil != err {
			t.Fatalf("%d: unpack error: %s", i, err)
		}
		if len(packed) != n {
			t.Fatalf("%d: unpack consumed: %d bytes  expected: %d", i, n, len(packed))
		}
		if !reflect.DeepEqual(&licence, unpacked) {
			t.Fatalf("%d: unpacked: %+v  expected: %+v", i, unpacked, licence)
		}
	}
}

// the two expiration states must pack to the same width
func TestLicenceExpirationFixedWidth(t *testing.T) {
	contentId := marketrecord.NewContentIdentifier("song1")

	withExpiry := marketrecord.LicenceData{
		Buyer:        buyerAccount,
		ContentId:    contentId,
		Price:        2500,
		Timestamp:    1700010203,
		PurchaseType: marketrecord.Rental,
		Expiration:   marketrecord.ExpiryAt(1700617403),
	}
	withoutExpiry := withExpiry
	withoutExpiry.Expiration = marketrecord.NoExpiry()

	packedWith, err := withExpiry.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	packedWithout, err := withoutExpiry.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if len(packedWith) != len(packedWithout) {
		t.Fatalf("widths differ: %d != %d", len(packedWith), len(packedWithout))
	}
}

func TestSubscriptionDataPackUnpack(t *testing.T) {
	subscription := &marketrecord.SubscriptionData{
		Subscriber:     buyerAccount,
		Tier:           3,
		StartTime:      1700010203,
		ExpirationTime: 1700010203 + 30*24*3600,
		Active:         true,
	}

	packed, err := subscription.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if len(packed) > marketrecord.SubscriptionDataMaximumSize {
		t.Fatalf("packed size: %d  exceeds maximum: %d", len(packed), marketrecord.SubscriptionDataMaximumSize)
	}

	unpacked, n, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Fatalf("unpack consumed: %d bytes  expected: %d", n, len(packed))
	}
	if !reflect.DeepEqual(subscription, unpacked) {
		t.Fatalf("unpacked: %+v  expected: %+v", unpacked, subscription)
	}

	// tier zero is not packable
	subscription.Tier = 0
	_, err = subscription.Pack()
	if fault.InvalidSubscriptionTier != err {
		t.Fatalf("error: %v  expected: %v", err, fault.InvalidSubscriptionTier)
	}
}

// garbage must not unpack
func TestUnpackGarbage(t *testing.T) {
	testList := []marketrecord.Packed{
		nil,
		{},
		{0xff},
		{byte(marketrecord.InvalidTag)},
		{byte(marketrecord.ContentDataTag)},             // truncated after tag
		{byte(marketrecord.LicenceDataTag), 0x05, 0x01}, // truncated account
	}

	for i, packed := range testList {
		_, _, err := packed.Unpack()
		if nil == err {
			t.Errorf("%d: unexpected success for: %x", i, packed)
		}
	}
}

func TestRecordName(t *testing.T) {
	testList := []struct {
		record   interface{}
		name     string
		expected bool
	}{
		{&marketrecord.PlatformData{}, "PlatformData", true},
		{marketrecord.ContentData{}, "ContentData", true},
		{&marketrecord.LicenceData{}, "LicenceData", true},
		{&marketrecord.SubscriptionData{}, "SubscriptionData", true},
		{42, "*unknown*", false},
	}

	for i, item := range testList {
		name, ok := marketrecord.RecordName(item.record)
		if name != item.name || ok != item.expected {
			t.Errorf("%d: name: %q, %v  expected: %q, %v", i, name, ok, item.name, item.expected)
		}
	}
}
