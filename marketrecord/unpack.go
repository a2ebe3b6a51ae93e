// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketrecord

import (
	"encoding/binary"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   content, ok := result.(*marketrecord.ContentData)
// or:
//   switch record := result.(type) {
//   case *marketrecord.ContentData:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if rec := recover(); nil != rec {
			r = nil
			n = 0
			e = fault.NotTransactionPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotTransactionPack
	}

	switch TagType(recordType) {

	case PlatformDataTag:
		authority, authorityLength, err := unpackAccount(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += authorityLength

		platformFee := binary.BigEndian.Uint64(record[n:])
		n += uint64Size
		totalContentCount := binary.BigEndian.Uint64(record[n:])
		n += uint64Size
		totalSalesVolume := binary.BigEndian.Uint64(record[n:])
		n += uint64Size

		r := &PlatformData{
			Authority:         authority,
			PlatformFee:       platformFee,
			TotalContentCount: totalContentCount,
			TotalSalesVolume:  totalSalesVolume,
		}
		return r, n, nil

	case ContentDataTag:
		id, idLength, err := unpackString(record[n:], maxContentIdLength)
		if nil != err {
			return nil, 0, err
		}
		n += idLength

		creator, creatorLength, err := unpackAccount(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += creatorLength

		storageLocator, locatorLength, err := unpackString(record[n:], maxStorageLocatorLength)
		if nil != err {
			return nil, 0, err
		}
		n += locatorLength

		price := binary.BigEndian.Uint64(record[n:])
		n += uint64Size
		royaltyPercentage := record[n]
		n += 1
		salesCount := binary.BigEndian.Uint64(record[n:])
		n += uint64Size
		active := 0 != record[n]
		n += 1
		createdAt := int64(binary.BigEndian.Uint64(record[n:]))
		n += uint64Size
		rentalEnabled := 0 != record[n]
		n += 1
		rentalPrice := binary.BigEndian.Uint64(record[n:])
		n += uint64Size
		rentalDuration := int64(binary.BigEndian.Uint64(record[n:]))
		n += uint64Size
		subscriptionTier := record[n]
		n += 1

		r := &ContentData{
			Id:                id,
			Creator:           creator,
			StorageLocator:    storageLocator,
			Price:             price,
			RoyaltyPercentage: royaltyPercentage,
			SalesCount:        salesCount,
			Active:            active,
			CreatedAt:         createdAt,
			RentalEnabled:     rentalEnabled,
			RentalPrice:       rentalPrice,
			RentalDuration:    rentalDuration,
			SubscriptionTier:  subscriptionTier,
		}
		return r, n, nil

	case LicenceDataTag:
		buyer, buyerLength, err := unpackAccount(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += buyerLength

		var contentId ContentIdentifier
		err = ContentIdentifierFromBytes(&contentId, record[n:n+IdentifierLength])
		if nil != err {
			return nil, 0, err
		}
		n += IdentifierLength

		price := binary.BigEndian.Uint64(record[n:])
		n += uint64Size
		timestamp := int64(binary.BigEndian.Uint64(record[n:]))
		n += uint64Size
		resaleRights := 0 != record[n]
		n += 1
		purchaseType := PurchaseType(record[n])
		if purchaseType != FullPurchase && purchaseType != Rental {
			return nil, 0, fault.NotTransactionPack
		}
		n += 1

		expiration := NoExpiry()
		present := 0 != record[n]
		n += 1
		expirationTime := int64(binary.BigEndian.Uint64(record[n:]))
		n += uint64Size
		if present {
			expiration = ExpiryAt(expirationTime)
		}

		r := &LicenceData{
			Buyer:        buyer,
			ContentId:    contentId,
			Price:        price,
			Timestamp:    timestamp,
			ResaleRights: resaleRights,
			PurchaseType: purchaseType,
			Expiration:   expiration,
		}
		return r, n, nil

	case SubscriptionDataTag:
		subscriber, subscriberLength, err := unpackAccount(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += subscriberLength

		tier := record[n]
		n += 1
		startTime := int64(binary.BigEndian.Uint64(record[n:]))
		n += uint64Size
		expirationTime := int64(binary.BigEndian.Uint64(record[n:]))
		n += uint64Size
		active := 0 != record[n]
		n += 1

		r := &SubscriptionData{
			Subscriber:     subscriber,
			Tier:           tier,
			StartTime:      startTime,
			ExpirationTime: expirationTime,
			Active:         active,
		}
		return r, n, nil

	default:
		return nil, 0, fault.NotTransactionPack
	}
}

// read a length prefixed string field
func unpackString(buffer []byte, maximum int) (string, int, error) {
	length, offset := util.ClippedVarint64(buffer, 1, maximum)
	if 0 == offset {
		return "", 0, fault.NotTransactionPack
	}
	s := string(buffer[offset : offset+length])
	return s, offset + length, nil
}

// read a length prefixed account field
func unpackAccount(buffer []byte) (*account.Account, int, error) {
	length, offset := util.ClippedVarint64(buffer, 1, 8192)
	if 0 == offset {
		return nil, 0, fault.NotTransactionPack
	}
	acc, err := account.AccountFromBytes(buffer[offset : offset+length])
	if nil != err {
		return nil, 0, err
	}
	return acc, offset + length, nil
}
