// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketrecord_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/slydr-network/slydrd/marketrecord"
)

// derivation must be a pure function of the semantic keys
func TestIdentifierDeterminism(t *testing.T) {
	one := marketrecord.NewContentIdentifier("song1")
	two := marketrecord.NewContentIdentifier("song1")
	if one != two {
		t.Fatalf("identifiers differ: %s != %s", one, two)
	}

	other := marketrecord.NewContentIdentifier("song2")
	if one == other {
		t.Fatal("distinct ids derived the same identifier")
	}

	if bytes.Equal(marketrecord.PlatformKey(), one[:]) {
		t.Fatal("platform key collides with a content identifier")
	}
	if !bytes.Equal(marketrecord.PlatformKey(), marketrecord.PlatformKey()) {
		t.Fatal("platform key is not stable")
	}
}

// a purchase and a rental of the same content by the same account
// must occupy different storage slots
func TestIdentifierNamespaces(t *testing.T) {
	contentId := marketrecord.NewContentIdentifier("song1")

	purchase := marketrecord.NewPurchaseIdentifier(buyerAccount, contentId)
	rental := marketrecord.NewRentalIdentifier(buyerAccount, contentId)
	if purchase == rental {
		t.Fatal("purchase and rental namespaces collide")
	}

	// different buyers derive different licence slots
	otherPurchase := marketrecord.NewPurchaseIdentifier(creatorAccount, contentId)
	if purchase == otherPurchase {
		t.Fatal("licence identifiers collide across buyers")
	}

	// different content derives different licence slots
	thirdPurchase := marketrecord.NewPurchaseIdentifier(buyerAccount, marketrecord.NewContentIdentifier("song2"))
	if purchase == thirdPurchase {
		t.Fatal("licence identifiers collide across content")
	}
}

func TestContentIdentifierText(t *testing.T) {
	contentId := marketrecord.NewContentIdentifier("song1")

	text, err := contentId.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var decoded marketrecord.ContentIdentifier
	err = decoded.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if contentId != decoded {
		t.Fatalf("decoded: %s  expected: %s", decoded, contentId)
	}

	var scanned marketrecord.ContentIdentifier
	n, err := fmt.Sscan(contentId.String(), &scanned)
	if nil != err {
		t.Fatalf("scan error: %s", err)
	}
	if 1 != n {
		t.Fatalf("scanned: %d items  expected: 1", n)
	}
	if contentId != scanned {
		t.Fatalf("scanned: %s  expected: %s", scanned, contentId)
	}

	if fmt.Sprintf("%#v", contentId) != "<content:"+contentId.String()+">" {
		t.Fatalf("go string: %#v", contentId)
	}
}

func TestInvalidContentIdentifierText(t *testing.T) {
	invalid := []string{
		"",
		"4b",
		"4473fb34cc05ed9599935a0098", // truncated
		"4473fb34cc05ed9599935a0098ce060dfa546f40932dd7b40d35f8fe5cd6a4fff0", // one byte over
	}

	for i, text := range invalid {
		var contentId marketrecord.ContentIdentifier
		err := contentId.UnmarshalText([]byte(text))
		if nil == err {
			t.Errorf("%d: unexpected success for: %q", i, text)
		}
	}
}

func TestLicenceIdentifierText(t *testing.T) {
	licenceId := marketrecord.NewRentalIdentifier(buyerAccount, marketrecord.NewContentIdentifier("song1"))

	text, err := licenceId.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var decoded marketrecord.LicenceIdentifier
	err = decoded.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if licenceId != decoded {
		t.Fatalf("decoded: %s  expected: %s", decoded, licenceId)
	}
}

func TestSubscriptionIdentifierText(t *testing.T) {
	subscriptionId := marketrecord.NewSubscriptionIdentifier(buyerAccount)

	text, err := subscriptionId.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var decoded marketrecord.SubscriptionIdentifier
	err = decoded.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if subscriptionId != decoded {
		t.Fatalf("decoded: %s  expected: %s", decoded, subscriptionId)
	}
}
