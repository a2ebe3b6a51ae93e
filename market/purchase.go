// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/marketrecord"
	"github.com/slydr-network/slydrd/payment"
	"github.com/slydr-network/slydrd/storage"
)

// PurchaseContent - settle a full purchase of a listing
//
// the licence carries resale rights and never expires
func PurchaseContent(buyer *account.Account, contentId string) (marketrecord.LicenceIdentifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	nilId := marketrecord.LicenceIdentifier{}

	if !globalData.initialised {
		return nilId, fault.NotInitialised
	}

	if nil == buyer {
		return nilId, fault.InvalidItem
	}

	id := marketrecord.NewContentIdentifier(contentId)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nilId, err
	}

	platform, err := fetchPlatform(trx)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	content, err := fetchContent(trx, id)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	if !content.Active {
		trx.Abort()
		return nilId, fault.ContentNotActive
	}

	licenceId := marketrecord.NewPurchaseIdentifier(buyer, id)
	if trx.Has(storage.Pool.Licences, licenceId[:]) {
		trx.Abort()
		return nilId, fault.RecordAlreadyExists
	}

	split, err := payment.SaleShares(content.Price, platform.PlatformFee)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	err = payment.ExecuteSale(globalData.ledger, buyer, content.Creator, platform.Authority, split)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	now := globalData.now()

	licence := &marketrecord.LicenceData{
		Buyer:        buyer,
		ContentId:    id,
		Price:        content.Price,
		Timestamp:    now,
		ResaleRights: true,
		PurchaseType: marketrecord.FullPurchase,
		Expiration:   marketrecord.NoExpiry(),
	}
	if err := storeLicence(trx, licenceId, licence); nil != err {
		trx.Abort()
		return nilId, err
	}

	content.SalesCount += 1
	if err := storeContent(trx, id, content); nil != err {
		trx.Abort()
		return nilId, err
	}

	platform.TotalSalesVolume += content.Price
	if err := storePlatform(trx, platform); nil != err {
		trx.Abort()
		return nilId, err
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return nilId, err
	}

	globalData.log.Infof("content purchased: %s  buyer: %s  price: %d", id, buyer, content.Price)

	emit(ContentPurchased{
		ContentId: content.Id,
		Buyer:     buyer,
		Creator:   content.Creator,
		Price:     content.Price,
		Timestamp: now,
	})

	return licenceId, nil
}

// RentContent - settle a time-limited rental of a listing
//
// the licence carries no resale rights and expires after the
// listing's rental duration
func RentContent(renter *account.Account, contentId string) (marketrecord.LicenceIdentifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	nilId := marketrecord.LicenceIdentifier{}

	if !globalData.initialised {
		return nilId, fault.NotInitialised
	}

	if nil == renter {
		return nilId, fault.InvalidItem
	}

	id := marketrecord.NewContentIdentifier(contentId)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nilId, err
	}

	platform, err := fetchPlatform(trx)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	content, err := fetchContent(trx, id)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	if !content.Active {
		trx.Abort()
		return nilId, fault.ContentNotActive
	}
	if !content.RentalEnabled {
		trx.Abort()
		return nilId, fault.RentalNotEnabled
	}

	licenceId := marketrecord.NewRentalIdentifier(renter, id)
	if trx.Has(storage.Pool.Licences, licenceId[:]) {
		trx.Abort()
		return nilId, fault.RecordAlreadyExists
	}

	split, err := payment.SaleShares(content.RentalPrice, platform.PlatformFee)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	err = payment.ExecuteSale(globalData.ledger, renter, content.Creator, platform.Authority, split)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	now := globalData.now()
	expiration := now + content.RentalDuration

	licence := &marketrecord.LicenceData{
		Buyer:        renter,
		ContentId:    id,
		Price:        content.RentalPrice,
		Timestamp:    now,
		ResaleRights: false,
		PurchaseType: marketrecord.Rental,
		Expiration:   marketrecord.ExpiryAt(expiration),
	}
	if err := storeLicence(trx, licenceId, licence); nil != err {
		trx.Abort()
		return nilId, err
	}

	platform.TotalSalesVolume += content.RentalPrice
	if err := storePlatform(trx, platform); nil != err {
		trx.Abort()
		return nilId, err
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return nilId, err
	}

	globalData.log.Infof("content rented: %s  renter: %s  expires: %d", id, renter, expiration)

	emit(ContentRented{
		ContentId:  content.Id,
		Renter:     renter,
		Creator:    content.Creator,
		Price:      content.RentalPrice,
		Expiration: expiration,
		Timestamp:  now,
	})

	return licenceId, nil
}
