// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketrecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/util"
)

// Pack PlatformData
//
// Pack Varint64(tag) followed by fields in order as struct above
func (platform *PlatformData) Pack() (Packed, error) {
	if nil == platform.Authority {
		return nil, fault.InvalidItem
	}
	if 0 == platform.PlatformFee {
		return nil, fault.InvalidFeeAmount
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(PlatformDataTag))
	message = appendAccount(message, platform.Authority)
	message = appendUint64(message, platform.PlatformFee)
	message = appendUint64(message, platform.TotalContentCount)
	message = appendUint64(message, platform.TotalSalesVolume)
	return message, nil
}

// Pack ContentData
//
// Pack Varint64(tag) followed by fields in order as struct above
func (content *ContentData) Pack() (Packed, error) {
	if nil == content.Creator {
		return nil, fault.InvalidItem
	}

	if 0 == len(content.Id) {
		return nil, fault.InvalidContentId
	}
	if utf8.RuneCountInString(content.Id) > maxContentIdLength {
		return nil, fault.ContentIdTooLong
	}

	if 0 == len(content.StorageLocator) {
		return nil, fault.InvalidArweaveId
	}
	if utf8.RuneCountInString(content.StorageLocator) > maxStorageLocatorLength {
		return nil, fault.StorageLocatorTooLong
	}

	if 0 == content.Price {
		return nil, fault.InvalidPrice
	}
	if content.RoyaltyPercentage > 100 {
		return nil, fault.InvalidRoyaltyPercentage
	}

	// rental parameters only need to be consistent when enabled
	if content.RentalEnabled {
		if 0 == content.RentalPrice {
			return nil, fault.InvalidRentalPrice
		}
		if content.RentalDuration <= 0 {
			return nil, fault.InvalidRentalDuration
		}
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(ContentDataTag))
	message = appendString(message, content.Id)
	message = appendAccount(message, content.Creator)
	message = appendString(message, content.StorageLocator)
	message = appendUint64(message, content.Price)
	message = append(message, content.RoyaltyPercentage)
	message = appendUint64(message, content.SalesCount)
	message = appendBool(message, content.Active)
	message = appendUint64(message, uint64(content.CreatedAt))
	message = appendBool(message, content.RentalEnabled)
	message = appendUint64(message, content.RentalPrice)
	message = appendUint64(message, uint64(content.RentalDuration))
	message = append(message, content.SubscriptionTier)
	return message, nil
}

// Pack LicenceData
//
// Pack Varint64(tag) followed by fields in order as struct above;
// the expiration always occupies its full reserved width
func (licence *LicenceData) Pack() (Packed, error) {
	if nil == licence.Buyer {
		return nil, fault.InvalidItem
	}
	if licence.PurchaseType != FullPurchase && licence.PurchaseType != Rental {
		return nil, fault.InvalidItem
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(LicenceDataTag))
	message = appendAccount(message, licence.Buyer)
	message = append(message, licence.ContentId[:]...)
	message = appendUint64(message, licence.Price)
	message = appendUint64(message, uint64(licence.Timestamp))
	message = appendBool(message, licence.ResaleRights)
	message = append(message, byte(licence.PurchaseType))
	message = appendBool(message, licence.Expiration.Present)
	if licence.Expiration.Present {
		message = appendUint64(message, uint64(licence.Expiration.Unix))
	} else {
		message = appendUint64(message, 0)
	}
	return message, nil
}

// Pack SubscriptionData
//
// Pack Varint64(tag) followed by fields in order as struct above
func (subscription *SubscriptionData) Pack() (Packed, error) {
	if nil == subscription.Subscriber {
		return nil, fault.InvalidItem
	}
	if subscription.Tier < 1 || subscription.Tier > 3 {
		return nil, fault.InvalidSubscriptionTier
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(SubscriptionDataTag))
	message = appendAccount(message, subscription.Subscriber)
	message = append(message, subscription.Tier)
	message = appendUint64(message, uint64(subscription.StartTime))
	message = appendUint64(message, uint64(subscription.ExpirationTime))
	message = appendBool(message, subscription.Active)
	return message, nil
}

// append a single string field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	data := address.Bytes()
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a fixed width big endian uint64 to a buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(valueBytes, value)
	return append(buffer, valueBytes...)
}

// append a single byte boolean to a buffer
func appendBool(buffer Packed, value bool) Packed {
	b := byte(0)
	if value {
		b = 1
	}
	return append(buffer, b)
}
