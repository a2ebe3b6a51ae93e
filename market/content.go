// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/marketrecord"
	"github.com/slydr-network/slydrd/storage"
)

// NewContentArguments - the full set of listing parameters
type NewContentArguments struct {
	ContentId         string
	StorageLocator    string
	Price             uint64
	RoyaltyPercentage uint8
	RentalEnabled     bool
	RentalPrice       uint64
	RentalDuration    int64
	SubscriptionTier  uint8
}

// ContentUpdate - optional new values for a listing
//
// a nil field leaves the current value unchanged
type ContentUpdate struct {
	Price            *uint64
	Active           *bool
	RentalEnabled    *bool
	RentalPrice      *uint64
	RentalDuration   *int64
	SubscriptionTier *uint8
}

// CreateContent - create a new listing for a creator
//
// the listing is addressed by its derived content identifier, so the
// same content id can never be listed twice
func CreateContent(creator *account.Account, arguments NewContentArguments) (marketrecord.ContentIdentifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	nilId := marketrecord.ContentIdentifier{}

	if !globalData.initialised {
		return nilId, fault.NotInitialised
	}

	if nil == creator {
		return nilId, fault.InvalidItem
	}

	content := &marketrecord.ContentData{
		Id:                arguments.ContentId,
		Creator:           creator,
		StorageLocator:    arguments.StorageLocator,
		Price:             arguments.Price,
		RoyaltyPercentage: arguments.RoyaltyPercentage,
		SalesCount:        0,
		Active:            true,
		CreatedAt:         globalData.now(),
		RentalEnabled:     arguments.RentalEnabled,
		RentalPrice:       arguments.RentalPrice,
		RentalDuration:    arguments.RentalDuration,
		SubscriptionTier:  arguments.SubscriptionTier,
	}

	// Pack validates every listing field
	packed, err := content.Pack()
	if nil != err {
		return nilId, err
	}

	contentId := marketrecord.NewContentIdentifier(arguments.ContentId)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nilId, err
	}

	platform, err := fetchPlatform(trx)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	if trx.Has(storage.Pool.Contents, contentId[:]) {
		trx.Abort()
		return nilId, fault.RecordAlreadyExists
	}

	trx.Put(storage.Pool.Contents, contentId[:], []byte(packed))

	platform.TotalContentCount += 1
	if err := storePlatform(trx, platform); nil != err {
		trx.Abort()
		return nilId, err
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return nilId, err
	}

	globalData.log.Infof("content created: %s  creator: %s", contentId, creator)

	emit(ContentCreated{
		ContentId:         arguments.ContentId,
		Creator:           creator,
		Price:             arguments.Price,
		RoyaltyPercentage: arguments.RoyaltyPercentage,
		RentalEnabled:     arguments.RentalEnabled,
		SubscriptionTier:  arguments.SubscriptionTier,
		Timestamp:         content.CreatedAt,
	})

	return contentId, nil
}

// UpdateContent - change listing fields; creator only
func UpdateContent(creator *account.Account, contentId string, update ContentUpdate) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if nil == creator {
		return fault.InvalidItem
	}

	id := marketrecord.NewContentIdentifier(contentId)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	content, err := fetchContent(trx, id)
	if nil != err {
		trx.Abort()
		return err
	}

	if creator.String() != content.Creator.String() {
		trx.Abort()
		return fault.NotAuthorized
	}

	if nil != update.Price {
		if 0 == *update.Price {
			trx.Abort()
			return fault.InvalidPrice
		}
		content.Price = *update.Price
	}

	if nil != update.Active {
		content.Active = *update.Active
	}

	if nil != update.RentalEnabled {
		content.RentalEnabled = *update.RentalEnabled
	}

	if nil != update.RentalPrice {
		if 0 == *update.RentalPrice {
			trx.Abort()
			return fault.InvalidRentalPrice
		}
		content.RentalPrice = *update.RentalPrice
	}

	if nil != update.RentalDuration {
		if *update.RentalDuration <= 0 {
			trx.Abort()
			return fault.InvalidRentalDuration
		}
		content.RentalDuration = *update.RentalDuration
	}

	if nil != update.SubscriptionTier {
		content.SubscriptionTier = *update.SubscriptionTier
	}

	if err := storeContent(trx, id, content); nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("content updated: %s", id)

	emit(ContentUpdated{
		ContentId:     content.Id,
		Creator:       content.Creator,
		Price:         content.Price,
		Active:        content.Active,
		RentalEnabled: content.RentalEnabled,
		Timestamp:     globalData.now(),
	})

	return nil
}
