// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
)

// MemoryLedger - an in-process ledger keyed by account
//
// used by the standalone daemon and by tests; balances only exist for
// the lifetime of the process
type MemoryLedger struct {
	sync.Mutex
	balances map[string]uint64
}

// NewMemoryLedger - create an empty ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[string]uint64),
	}
}

// Deposit - credit an account
//
// only for funding accounts before settlement; transfers between
// accounts must go through Transfer
func (l *MemoryLedger) Deposit(owner *account.Account, amount uint64) {
	l.Lock()
	l.balances[owner.String()] += amount
	l.Unlock()
}

// Balance - the current balance of an account
func (l *MemoryLedger) Balance(owner *account.Account) uint64 {
	l.Lock()
	defer l.Unlock()
	return l.balances[owner.String()]
}

// Transfer - move amount between accounts under one lock
func (l *MemoryLedger) Transfer(from *account.Account, to *account.Account, amount uint64) error {
	if nil == from || nil == to {
		return fault.InvalidItem
	}

	l.Lock()
	defer l.Unlock()

	payer := from.String()
	if l.balances[payer] < amount {
		return fault.InsufficientFunds
	}

	l.balances[payer] -= amount
	l.balances[to.String()] += amount
	return nil
}
