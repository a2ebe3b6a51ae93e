// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/slydr-network/slydrd/account"
)

// Ledger - the value transfer engine used by settlement
//
// Transfer must be all-or-nothing: on any error both balances are
// unchanged.  Implementations must be safe for concurrent use.
type Ledger interface {

	// Transfer - move amount from one account to another
	//
	// returns fault.InsufficientFunds if the payer balance is too low
	Transfer(from *account.Account, to *account.Account, amount uint64) error

	// Balance - the current balance of an account
	Balance(owner *account.Account) uint64
}
