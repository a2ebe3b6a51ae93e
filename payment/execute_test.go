// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/ledger"
	"github.com/slydr-network/slydrd/ledger/mocks"
	"github.com/slydr-network/slydrd/payment"
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

func TestExecuteSale(t *testing.T) {
	l := ledger.NewMemoryLedger()

	buyer := makeAccount(0x01)
	creator := makeAccount(0x02)
	platform := makeAccount(0x03)

	l.Deposit(buyer, 10000)

	split, err := payment.SaleShares(10000, 1000)
	assert.Nil(t, err, "split error")

	err = payment.ExecuteSale(l, buyer, creator, platform, split)
	assert.Nil(t, err, "execute error")
	assert.Equal(t, uint64(0), l.Balance(buyer), "buyer balance")
	assert.Equal(t, uint64(9000), l.Balance(creator), "creator balance")
	assert.Equal(t, uint64(1000), l.Balance(platform), "platform balance")
}

func TestExecuteSaleInsufficientFunds(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	buyer := makeAccount(0x01)
	creator := makeAccount(0x02)
	platform := makeAccount(0x03)

	// balance below the total means no transfer leg may run
	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Balance(buyer).Return(uint64(9999)).Times(1)
	l.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	split := payment.SaleSplit{CreatorAmount: 9000, PlatformFee: 1000}
	err := payment.ExecuteSale(l, buyer, creator, platform, split)
	assert.Equal(t, fault.InsufficientFunds, err, "execute error")
}

func TestExecuteResale(t *testing.T) {
	l := ledger.NewMemoryLedger()

	buyer := makeAccount(0x01)
	creator := makeAccount(0x02)
	seller := makeAccount(0x04)
	platform := makeAccount(0x03)

	l.Deposit(buyer, 5000)

	split, err := payment.ResaleShares(5000, 10, 1000)
	assert.Nil(t, err, "split error")

	err = payment.ExecuteResale(l, buyer, creator, seller, platform, split)
	assert.Nil(t, err, "execute error")
	assert.Equal(t, uint64(0), l.Balance(buyer), "buyer balance")
	assert.Equal(t, uint64(500), l.Balance(creator), "creator balance")
	assert.Equal(t, uint64(3500), l.Balance(seller), "seller balance")
	assert.Equal(t, uint64(1000), l.Balance(platform), "platform balance")
}

func TestExecuteResaleTransferOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	buyer := makeAccount(0x01)
	creator := makeAccount(0x02)
	seller := makeAccount(0x04)
	platform := makeAccount(0x03)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Balance(buyer).Return(uint64(5000)).Times(1)

	// royalty, then seller remainder, then platform fee
	royalty := l.EXPECT().Transfer(buyer, creator, uint64(500)).Return(nil)
	remainder := l.EXPECT().Transfer(buyer, seller, uint64(3500)).Return(nil).After(royalty)
	l.EXPECT().Transfer(buyer, platform, uint64(1000)).Return(nil).After(remainder)

	split := payment.ResaleSplit{RoyaltyAmount: 500, SellerAmount: 3500, PlatformFee: 1000}
	err := payment.ExecuteResale(l, buyer, creator, seller, platform, split)
	assert.Nil(t, err, "execute error")
}
