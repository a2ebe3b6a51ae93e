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

// length of one subscription period
const subscriptionPeriod = 30 * 24 * 60 * 60 // 30 days in seconds

// Subscribe - settle a platform subscription
//
// the full tier price goes to the platform authority; subscribing
// again replaces any existing subscription with a fresh period
func Subscribe(subscriber *account.Account, tier uint8) (marketrecord.SubscriptionIdentifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	nilId := marketrecord.SubscriptionIdentifier{}

	if !globalData.initialised {
		return nilId, fault.NotInitialised
	}

	if nil == subscriber {
		return nilId, fault.InvalidItem
	}

	price, err := payment.TierPrice(tier)
	if nil != err {
		return nilId, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nilId, err
	}

	platform, err := fetchPlatform(trx)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	err = globalData.ledger.Transfer(subscriber, platform.Authority, price)
	if nil != err {
		trx.Abort()
		return nilId, err
	}

	now := globalData.now()
	expiration := now + subscriptionPeriod

	subscription := &marketrecord.SubscriptionData{
		Subscriber:     subscriber,
		Tier:           tier,
		StartTime:      now,
		ExpirationTime: expiration,
		Active:         true,
	}

	subscriptionId := marketrecord.NewSubscriptionIdentifier(subscriber)

	packed, err := subscription.Pack()
	if nil != err {
		trx.Abort()
		return nilId, err
	}
	trx.Put(storage.Pool.Subscriptions, subscriptionId[:], []byte(packed))

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return nilId, err
	}

	globalData.log.Infof("subscription: %s  tier: %d  expires: %d", subscriber, tier, expiration)

	emit(SubscriptionCreated{
		Subscriber: subscriber,
		Tier:       tier,
		Price:      price,
		Expiration: expiration,
		Timestamp:  now,
	})

	return subscriptionId, nil
}
