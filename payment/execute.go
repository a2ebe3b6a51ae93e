// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/ledger"
)

// ExecuteSale - move a sale amount from buyer to creator and platform
//
// the buyer pays every leg, so checking the full amount up front
// guarantees no leg fails part way through
func ExecuteSale(l ledger.Ledger, buyer *account.Account, creator *account.Account, platform *account.Account, split SaleSplit) error {
	total := split.CreatorAmount + split.PlatformFee
	if l.Balance(buyer) < total {
		return fault.InsufficientFunds
	}

	if err := l.Transfer(buyer, creator, split.CreatorAmount); nil != err {
		return err
	}
	return l.Transfer(buyer, platform, split.PlatformFee)
}

// ExecuteResale - move a resale price from buyer to creator, seller and platform
//
// royalty settles first, then the seller remainder, then the platform fee
func ExecuteResale(l ledger.Ledger, buyer *account.Account, creator *account.Account, seller *account.Account, platform *account.Account, split ResaleSplit) error {
	total := split.RoyaltyAmount + split.SellerAmount + split.PlatformFee
	if l.Balance(buyer) < total {
		return fault.InsufficientFunds
	}

	if err := l.Transfer(buyer, creator, split.RoyaltyAmount); nil != err {
		return err
	}
	if err := l.Transfer(buyer, seller, split.SellerAmount); nil != err {
		return err
	}
	return l.Transfer(buyer, platform, split.PlatformFee)
}
