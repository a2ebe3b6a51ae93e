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

// read-only queries; these see committed records only

// Platform - the platform singleton
func Platform() (*marketrecord.PlatformData, error) {
	return unpackPlatform(storage.Pool.Platform.Get(marketrecord.PlatformKey()))
}

// Content - a content listing by its content id
func Content(contentId string) (*marketrecord.ContentData, error) {
	id := marketrecord.NewContentIdentifier(contentId)
	packed := storage.Pool.Contents.Get(id[:])
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

// Licence - a licence by its identifier
func Licence(licenceId marketrecord.LicenceIdentifier) (*marketrecord.LicenceData, error) {
	packed := storage.Pool.Licences.Get(licenceId[:])
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

// Subscription - the subscription of an account, if any
func Subscription(subscriber *account.Account) (*marketrecord.SubscriptionData, error) {
	subscriptionId := marketrecord.NewSubscriptionIdentifier(subscriber)
	packed := storage.Pool.Subscriptions.Get(subscriptionId[:])
	if nil == packed {
		return nil, fault.SubscriptionNotFound
	}
	record, err := unpackRecord(packed)
	if nil != err {
		return nil, err
	}
	subscription, ok := record.(*marketrecord.SubscriptionData)
	if !ok {
		return nil, fault.NotTransactionPack
	}
	return subscription, nil
}

func unpackPlatform(packed []byte) (*marketrecord.PlatformData, error) {
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
