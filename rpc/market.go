// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/market"
	"github.com/slydr-network/slydrd/marketrecord"
)

// Market - type for the RPC settlement service
type Market struct {
	log      *logger.L
	limiter  *rate.Limiter
	readOnly bool
}

// Market.Create
// -------------

// MarketCreateArguments - arguments for creating a listing
type MarketCreateArguments struct {
	Creator           string `json:"creator"`
	ContentId         string `json:"contentId"`
	StorageLocator    string `json:"storageLocator"`
	Price             uint64 `json:"price"`
	RoyaltyPercentage uint8  `json:"royaltyPercentage"`
	RentalEnabled     bool   `json:"rentalEnabled"`
	RentalPrice       uint64 `json:"rentalPrice"`
	RentalDuration    int64  `json:"rentalDuration"`
	SubscriptionTier  uint8  `json:"subscriptionTier"`
}

// MarketCreateReply - result of creating a listing
type MarketCreateReply struct {
	ContentId marketrecord.ContentIdentifier `json:"contentId"`
}

// Create - create a content listing
func (m *Market) Create(arguments *MarketCreateArguments, reply *MarketCreateReply) error {
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	if m.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	creator, err := account.AccountFromBase58(arguments.Creator)
	if nil != err {
		return err
	}

	m.log.Infof("Market.Create: %q by %s", arguments.ContentId, creator)

	contentId, err := market.CreateContent(creator, market.NewContentArguments{
		ContentId:         arguments.ContentId,
		StorageLocator:    arguments.StorageLocator,
		Price:             arguments.Price,
		RoyaltyPercentage: arguments.RoyaltyPercentage,
		RentalEnabled:     arguments.RentalEnabled,
		RentalPrice:       arguments.RentalPrice,
		RentalDuration:    arguments.RentalDuration,
		SubscriptionTier:  arguments.SubscriptionTier,
	})
	if nil != err {
		return err
	}

	reply.ContentId = contentId
	return nil
}

// Market.Update
// -------------

// MarketUpdateArguments - optional new values for a listing
type MarketUpdateArguments struct {
	Creator          string  `json:"creator"`
	ContentId        string  `json:"contentId"`
	Price            *uint64 `json:"price"`
	Active           *bool   `json:"active"`
	RentalEnabled    *bool   `json:"rentalEnabled"`
	RentalPrice      *uint64 `json:"rentalPrice"`
	RentalDuration   *int64  `json:"rentalDuration"`
	SubscriptionTier *uint8  `json:"subscriptionTier"`
}

// MarketUpdateReply - result of a listing update
type MarketUpdateReply struct {
	Updated bool `json:"updated"`
}

// Update - change fields of a listing; creator only
func (m *Market) Update(arguments *MarketUpdateArguments, reply *MarketUpdateReply) error {
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	if m.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	creator, err := account.AccountFromBase58(arguments.Creator)
	if nil != err {
		return err
	}

	m.log.Infof("Market.Update: %q by %s", arguments.ContentId, creator)

	err = market.UpdateContent(creator, arguments.ContentId, market.ContentUpdate{
		Price:            arguments.Price,
		Active:           arguments.Active,
		RentalEnabled:    arguments.RentalEnabled,
		RentalPrice:      arguments.RentalPrice,
		RentalDuration:   arguments.RentalDuration,
		SubscriptionTier: arguments.SubscriptionTier,
	})
	if nil != err {
		return err
	}

	reply.Updated = true
	return nil
}

// Market.Purchase
// ---------------

// MarketPurchaseArguments - arguments for a full purchase
type MarketPurchaseArguments struct {
	Buyer     string `json:"buyer"`
	ContentId string `json:"contentId"`
}

// MarketPurchaseReply - result of a settled purchase or rental
type MarketPurchaseReply struct {
	LicenceId marketrecord.LicenceIdentifier `json:"licenceId"`
}

// Purchase - settle a full purchase
func (m *Market) Purchase(arguments *MarketPurchaseArguments, reply *MarketPurchaseReply) error {
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	if m.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	buyer, err := account.AccountFromBase58(arguments.Buyer)
	if nil != err {
		return err
	}

	m.log.Infof("Market.Purchase: %q by %s", arguments.ContentId, buyer)

	licenceId, err := market.PurchaseContent(buyer, arguments.ContentId)
	if nil != err {
		return err
	}

	reply.LicenceId = licenceId
	return nil
}

// Market.Rent
// -----------

// MarketRentArguments - arguments for a rental
type MarketRentArguments struct {
	Renter    string `json:"renter"`
	ContentId string `json:"contentId"`
}

// Rent - settle a time-limited rental
func (m *Market) Rent(arguments *MarketRentArguments, reply *MarketPurchaseReply) error {
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	if m.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	renter, err := account.AccountFromBase58(arguments.Renter)
	if nil != err {
		return err
	}

	m.log.Infof("Market.Rent: %q by %s", arguments.ContentId, renter)

	licenceId, err := market.RentContent(renter, arguments.ContentId)
	if nil != err {
		return err
	}

	reply.LicenceId = licenceId
	return nil
}

// Market.Subscribe
// ----------------

// MarketSubscribeArguments - arguments for a subscription
type MarketSubscribeArguments struct {
	Subscriber string `json:"subscriber"`
	Tier       uint8  `json:"tier"`
}

// MarketSubscribeReply - result of a settled subscription
type MarketSubscribeReply struct {
	SubscriptionId marketrecord.SubscriptionIdentifier `json:"subscriptionId"`
}

// Subscribe - settle a platform subscription
func (m *Market) Subscribe(arguments *MarketSubscribeArguments, reply *MarketSubscribeReply) error {
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	if m.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	subscriber, err := account.AccountFromBase58(arguments.Subscriber)
	if nil != err {
		return err
	}

	m.log.Infof("Market.Subscribe: tier %d by %s", arguments.Tier, subscriber)

	subscriptionId, err := market.Subscribe(subscriber, arguments.Tier)
	if nil != err {
		return err
	}

	reply.SubscriptionId = subscriptionId
	return nil
}

// Market.Resell
// -------------

// MarketResellArguments - arguments for a secondary sale
type MarketResellArguments struct {
	Seller    string `json:"seller"`
	Buyer     string `json:"buyer"`
	ContentId string `json:"contentId"`
	Price     uint64 `json:"price"`
}

// Resell - settle a secondary sale
func (m *Market) Resell(arguments *MarketResellArguments, reply *MarketPurchaseReply) error {
	if err := rateLimit(m.limiter); nil != err {
		return err
	}
	if m.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	seller, err := account.AccountFromBase58(arguments.Seller)
	if nil != err {
		return err
	}
	buyer, err := account.AccountFromBase58(arguments.Buyer)
	if nil != err {
		return err
	}

	m.log.Infof("Market.Resell: %q from %s to %s", arguments.ContentId, seller, buyer)

	licenceId, err := market.ResellContent(seller, buyer, arguments.ContentId, arguments.Price)
	if nil != err {
		return err
	}

	reply.LicenceId = licenceId
	return nil
}
