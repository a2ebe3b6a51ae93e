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

// ResellContent - settle a secondary sale from one licence holder to
// a new buyer
//
// the creator receives a royalty cut of the seller's asking price;
// the buyer's new licence inherits the rights and expiration of the
// seller's licence
func ResellContent(seller *account.Account, buyer *account.Account, contentId string, price uint64) (marketrecord.LicenceIdentifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	nilId := marketrecord.LicenceIdentifier{}

	if !globalData.initialised {
		return nilId, fault.NotInitialised
	}

	if nil == seller || nil == buyer {
		return nilId, fault.InvalidItem
	}
	if 0 == price {
		return nilId, fault.InvalidPrice
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

	sellerLicenceId := marketrecord.NewPurchaseIdentifier(seller, id)
	sellerLicence, err := fetchLicence(trx, sellerLicenceId)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	if !sellerLicence.ResaleRights {
		trx.Abort()
		return nilId, fault.NoResaleRights
	}
	if sellerLicence.Expiration.Expired(globalData.now()) {
		trx.Abort()
		return nilId, fault.PurchaseExpired
	}

	buyerLicenceId := marketrecord.NewPurchaseIdentifier(buyer, id)
	if trx.Has(storage.Pool.Licences, buyerLicenceId[:]) {
		trx.Abort()
		return nilId, fault.RecordAlreadyExists
	}

	split, err := payment.ResaleShares(price, content.RoyaltyPercentage, platform.PlatformFee)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	err = payment.ExecuteResale(globalData.ledger, buyer, content.Creator, seller, platform.Authority, split)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	now := globalData.now()

	buyerLicence := &marketrecord.LicenceData{
		Buyer:        buyer,
		ContentId:    id,
		Price:        price,
		Timestamp:    now,
		ResaleRights: sellerLicence.ResaleRights,
		PurchaseType: sellerLicence.PurchaseType,
		Expiration:   sellerLicence.Expiration,
	}
	if err := storeLicence(trx, buyerLicenceId, buyerLicence); nil != err {
		trx.Abort()
		return nilId, err
	}

	platform.TotalSalesVolume += price
	if err := storePlatform(trx, platform); nil != err {
		trx.Abort()
		return nilId, err
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return nilId, err
	}

	globalData.log.Infof("content resold: %s  seller: %s  buyer: %s  price: %d", id, seller, buyer, price)

	emit(ContentResold{
		ContentId:     content.Id,
		Seller:        seller,
		Buyer:         buyer,
		Creator:       content.Creator,
		Price:         price,
		RoyaltyAmount: split.RoyaltyAmount,
		Timestamp:     now,
	})

	return buyerLicenceId, nil
}
