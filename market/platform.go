// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/marketrecord"
	"github.com/slydr-network/slydrd/storage"
)

// InitialisePlatform - create the platform singleton
//
// the authority receives every platform fee; the fee is fixed for
// the life of the platform
func InitialisePlatform(authority *account.Account, platformFee uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if nil == authority {
		return fault.InvalidItem
	}
	if 0 == platformFee {
		return fault.InvalidFeeAmount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if trx.Has(storage.Pool.Platform, marketrecord.PlatformKey()) {
		trx.Abort()
		return fault.RecordAlreadyExists
	}

	platform := &marketrecord.PlatformData{
		Authority:         authority,
		PlatformFee:       platformFee,
		TotalContentCount: 0,
		TotalSalesVolume:  0,
	}
	if err := storePlatform(trx, platform); nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("platform initialised: authority: %s  fee: %d", authority, platformFee)

	emit(PlatformInitialised{
		Authority:   authority,
		PlatformFee: platformFee,
		Timestamp:   globalData.now(),
	})

	return nil
}
