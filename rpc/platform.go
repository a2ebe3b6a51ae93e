// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/market"
	"github.com/slydr-network/slydrd/marketrecord"
)

// Platform - type for the RPC platform and record query service
type Platform struct {
	log      *logger.L
	limiter  *rate.Limiter
	readOnly bool
}

// Platform.Initialise
// -------------------

// PlatformInitialiseArguments - arguments for creating the platform
type PlatformInitialiseArguments struct {
	Authority   string `json:"authority"`
	PlatformFee uint64 `json:"platformFee"`
}

// PlatformInitialiseReply - result of platform creation
type PlatformInitialiseReply struct {
	Initialised bool `json:"initialised"`
}

// Initialise - create the platform singleton
func (p *Platform) Initialise(arguments *PlatformInitialiseArguments, reply *PlatformInitialiseReply) error {
	if err := rateLimit(p.limiter); nil != err {
		return err
	}
	if p.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	authority, err := account.AccountFromBase58(arguments.Authority)
	if nil != err {
		return err
	}

	p.log.Infof("Platform.Initialise: authority: %s  fee: %d", authority, arguments.PlatformFee)

	if err := market.InitialisePlatform(authority, arguments.PlatformFee); nil != err {
		return err
	}

	reply.Initialised = true
	return nil
}

// Platform.Get
// ------------

// PlatformGetArguments - no arguments
type PlatformGetArguments struct{}

// Get - the platform singleton
func (p *Platform) Get(arguments *PlatformGetArguments, reply *marketrecord.PlatformData) error {
	if err := rateLimit(p.limiter); nil != err {
		return err
	}

	platform, err := market.Platform()
	if nil != err {
		return err
	}

	*reply = *platform
	return nil
}

// Platform.Content
// ----------------

// ContentGetArguments - select a listing by content id
type ContentGetArguments struct {
	ContentId string `json:"contentId"`
}

// Content - a content listing
func (p *Platform) Content(arguments *ContentGetArguments, reply *marketrecord.ContentData) error {
	if err := rateLimit(p.limiter); nil != err {
		return err
	}

	content, err := market.Content(arguments.ContentId)
	if nil != err {
		return err
	}

	*reply = *content
	return nil
}

// Platform.Licence
// ----------------

// LicenceGetArguments - select a licence
//
// either by its identifier, or by holder and content id with a
// purchase or rental kind
type LicenceGetArguments struct {
	LicenceId string `json:"licenceId"`
	Holder    string `json:"holder"`
	ContentId string `json:"contentId"`
	Rental    bool   `json:"rental"`
}

// Licence - a purchase or rental licence
func (p *Platform) Licence(arguments *LicenceGetArguments, reply *marketrecord.LicenceData) error {
	if err := rateLimit(p.limiter); nil != err {
		return err
	}

	var licenceId marketrecord.LicenceIdentifier

	if "" != arguments.LicenceId {
		if err := licenceId.UnmarshalText([]byte(arguments.LicenceId)); nil != err {
			return err
		}
	} else {
		holder, err := account.AccountFromBase58(arguments.Holder)
		if nil != err {
			return err
		}
		contentId := marketrecord.NewContentIdentifier(arguments.ContentId)
		if arguments.Rental {
			licenceId = marketrecord.NewRentalIdentifier(holder, contentId)
		} else {
			licenceId = marketrecord.NewPurchaseIdentifier(holder, contentId)
		}
	}

	licence, err := market.Licence(licenceId)
	if nil != err {
		return err
	}

	*reply = *licence
	return nil
}

// Platform.Licences
// -----------------

// maximum licences in a single batch read
const maximumLicences = 100

// LicencesArguments - a batch of licence identifiers
type LicencesArguments struct {
	LicenceIds []marketrecord.LicenceIdentifier `json:"licenceIds"`
}

// LicencesReply - licences in argument order
type LicencesReply struct {
	Licences []*marketrecord.LicenceData `json:"licences"`
}

// Licences - read a batch of licences by identifier
func (p *Platform) Licences(arguments *LicencesArguments, reply *LicencesReply) error {
	count := len(arguments.LicenceIds)
	if err := rateLimitN(p.limiter, count, maximumLicences); nil != err {
		return err
	}

	licences := make([]*marketrecord.LicenceData, 0, count)
	for _, licenceId := range arguments.LicenceIds {
		licence, err := market.Licence(licenceId)
		if nil != err {
			return err
		}
		licences = append(licences, licence)
	}

	reply.Licences = licences
	return nil
}

// Platform.Subscription
// ---------------------

// SubscriptionGetArguments - select a subscription by subscriber
type SubscriptionGetArguments struct {
	Subscriber string `json:"subscriber"`
}

// Subscription - the subscription of an account
func (p *Platform) Subscription(arguments *SubscriptionGetArguments, reply *marketrecord.SubscriptionData) error {
	if err := rateLimit(p.limiter); nil != err {
		return err
	}

	subscriber, err := account.AccountFromBase58(arguments.Subscriber)
	if nil != err {
		return err
	}

	subscription, err := market.Subscription(subscriber)
	if nil != err {
		return err
	}

	*reply = *subscription
	return nil
}
