// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/ledger"
)

func makeAccount(fill byte) *account.Account {
	key := make([]byte, 32)
	for i := range key {
		key[i] = fill
	}
	return &account.Account{
		Test:      true,
		PublicKey: key,
	}
}

func TestTransfer(t *testing.T) {
	l := ledger.NewMemoryLedger()

	alice := makeAccount(0xa1)
	bob := makeAccount(0xb2)

	l.Deposit(alice, 1000)

	err := l.Transfer(alice, bob, 300)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, uint64(700), l.Balance(alice), "payer balance")
	assert.Equal(t, uint64(300), l.Balance(bob), "payee balance")
}

func TestTransferInsufficientFunds(t *testing.T) {
	l := ledger.NewMemoryLedger()

	alice := makeAccount(0xa1)
	bob := makeAccount(0xb2)

	l.Deposit(alice, 100)

	err := l.Transfer(alice, bob, 101)
	assert.Equal(t, fault.InsufficientFunds, err, "transfer error")

	// both balances untouched after the failure
	assert.Equal(t, uint64(100), l.Balance(alice), "payer balance")
	assert.Equal(t, uint64(0), l.Balance(bob), "payee balance")
}

func TestTransferExactBalance(t *testing.T) {
	l := ledger.NewMemoryLedger()

	alice := makeAccount(0xa1)
	bob := makeAccount(0xb2)

	l.Deposit(alice, 500)

	err := l.Transfer(alice, bob, 500)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, uint64(0), l.Balance(alice), "payer balance")
	assert.Equal(t, uint64(500), l.Balance(bob), "payee balance")
}

func TestTransferNilAccount(t *testing.T) {
	l := ledger.NewMemoryLedger()

	alice := makeAccount(0xa1)

	err := l.Transfer(nil, alice, 1)
	assert.Equal(t, fault.InvalidItem, err, "transfer error")

	err = l.Transfer(alice, nil, 1)
	assert.Equal(t, fault.InvalidItem, err, "transfer error")
}

func TestConcurrentTransfersConserveValue(t *testing.T) {
	l := ledger.NewMemoryLedger()

	alice := makeAccount(0xa1)
	bob := makeAccount(0xb2)

	l.Deposit(alice, 10000)
	l.Deposit(bob, 10000)

	var wg sync.WaitGroup
	for i := 0; i < 10; i += 1 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j += 1 {
				l.Transfer(alice, bob, 1)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j += 1 {
				l.Transfer(bob, alice, 1)
			}
		}()
	}
	wg.Wait()

	total := l.Balance(alice) + l.Balance(bob)
	assert.Equal(t, uint64(20000), total, "total value")
}
