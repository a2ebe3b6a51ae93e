// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/ledger"
	"github.com/slydr-network/slydrd/marketrecord"
	"github.com/slydr-network/slydrd/storage"
)

// name of the event source on the message bus
const busName = "market"

// globalDataType - the state of the market
type globalDataType struct {
	sync.Mutex // settlement operations are serialised

	log    *logger.L
	ledger ledger.Ledger

	// clock hook, overridden by tests
	now func() int64

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - connect the settlement handlers to a ledger
//
// storage must already be initialised
func Initialise(l ledger.Ledger) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("market")
	globalData.log.Info("starting…")

	globalData.ledger = l
	globalData.now = func() int64 {
		return time.Now().Unix()
	}

	globalData.initialised = true
	return nil
}

// Finalise - stop all background processes
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.ledger = nil
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// unpackRecord - unpack a stored record, rejecting trailing bytes
func unpackRecord(packed []byte) (marketrecord.Record, error) {
	record, n, err := marketrecord.Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	if len(packed) != n {
		return nil, fault.NotTransactionPack
	}
	return record, nil
}

// fetchPlatform - read and unpack the platform singleton
func fetchPlatform(trx storage.Transaction) (*marketrecord.PlatformData, error) {
	packed := trx.Get(storage.Pool.Platform, marketrecord.PlatformKey())
	if nil == packed {
		return nil, fault.PlatformNotFound
	}
	record, err := unpackRecord(packed)
	if nil != err {
		return nil, err
	}
	platform, ok := record.(*marketrecord.PlatformData)
	if !ok {
		return nil, fault.NotTransactionPack
	}
	return platform, nil
}

// fetchContent - read and unpack a content listing
func fetchContent(trx storage.Transaction, contentId marketrecord.ContentIdentifier) (*marketrecord.ContentData, error) {
	packed := trx.Get(storage.Pool.Contents, contentId[:])
	if nil == packed {
		return nil, fault.ContentNotFound
	}
	record, err := unpackRecord(packed)
	if nil != err {
		return nil, err
	}
	content, ok := record.(*marketrecord.ContentData)
	if !ok {
		return nil, fault.NotTransactionPack
	}
	return content, nil
}

// fetchLicence - read and unpack a licence
func fetchLicence(trx storage.Transaction, licenceId marketrecord.LicenceIdentifier) (*marketrecord.LicenceData, error) {
	packed := trx.Get(storage.Pool.Licences, licenceId[:])
	if nil == packed {
		return nil, fault.LicenceNotFound
	}
	record, err := unpackRecord(packed)
	if nil != err {
		return nil, err
	}
	licence, ok := record.(*marketrecord.LicenceData)
	if !ok {
		return nil, fault.NotTransactionPack
	}
	return licence, nil
}

// storePlatform - pack and stage the platform singleton
func storePlatform(trx storage.Transaction, platform *marketrecord.PlatformData) error {
	packed, err := platform.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Platform, marketrecord.PlatformKey(), packed)
	return nil
}

// storeContent - pack and stage a content listing
func storeContent(trx storage.Transaction, contentId marketrecord.ContentIdentifier, content *marketrecord.ContentData) error {
	packed, err := content.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Contents, contentId[:], packed)
	return nil
}

// storeLicence - pack and stage a licence
func storeLicence(trx storage.Transaction, licenceId marketrecord.LicenceIdentifier, licence *marketrecord.LicenceData) error {
	packed, err := licence.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Licences, licenceId[:], packed)
	return nil
}
