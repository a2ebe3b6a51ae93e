// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/messagebus"
)

// PlatformInitialised - the platform singleton was created
type PlatformInitialised struct {
	Authority   *account.Account `json:"authority"`
	PlatformFee uint64           `json:"platformFee"`
	Timestamp   int64            `json:"timestamp"`
}

// ContentCreated - a new content listing
type ContentCreated struct {
	ContentId         string           `json:"contentId"`
	Creator           *account.Account `json:"creator"`
	Price             uint64           `json:"price"`
	RoyaltyPercentage uint8            `json:"royaltyPercentage"`
	RentalEnabled     bool             `json:"rentalEnabled"`
	SubscriptionTier  uint8            `json:"subscriptionTier"`
	Timestamp         int64            `json:"timestamp"`
}

// ContentUpdated - a listing changed
type ContentUpdated struct {
	ContentId     string           `json:"contentId"`
	Creator       *account.Account `json:"creator"`
	Price         uint64           `json:"price"`
	Active        bool             `json:"active"`
	RentalEnabled bool             `json:"rentalEnabled"`
	Timestamp     int64            `json:"timestamp"`
}

// ContentPurchased - a full purchase settled
type ContentPurchased struct {
	ContentId string           `json:"contentId"`
	Buyer     *account.Account `json:"buyer"`
	Creator   *account.Account `json:"creator"`
	Price     uint64           `json:"price"`
	Timestamp int64            `json:"timestamp"`
}

// ContentRented - a rental settled
type ContentRented struct {
	ContentId  string           `json:"contentId"`
	Renter     *account.Account `json:"renter"`
	Creator    *account.Account `json:"creator"`
	Price      uint64           `json:"price"`
	Expiration int64            `json:"expiration"`
	Timestamp  int64            `json:"timestamp"`
}

// SubscriptionCreated - a subscription settled
type SubscriptionCreated struct {
	Subscriber *account.Account `json:"subscriber"`
	Tier       uint8            `json:"tier"`
	Price      uint64           `json:"price"`
	Expiration int64            `json:"expiration"`
	Timestamp  int64            `json:"timestamp"`
}

// ContentResold - a resale settled
type ContentResold struct {
	ContentId     string           `json:"contentId"`
	Seller        *account.Account `json:"seller"`
	Buyer         *account.Account `json:"buyer"`
	Creator       *account.Account `json:"creator"`
	Price         uint64           `json:"price"`
	RoyaltyAmount uint64           `json:"royaltyAmount"`
	Timestamp     int64            `json:"timestamp"`
}

// emit - queue an event; a full queue drops it
func emit(event interface{}) {
	if !messagebus.Send(busName, event) {
		globalData.log.Warn("event queue full: event dropped")
	}
}
