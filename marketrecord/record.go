// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketrecord

import (
	"encoding/hex"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	PlatformDataTag     = TagType(iota) // the singleton platform record
	ContentDataTag      = TagType(iota) // a content listing
	LicenceDataTag      = TagType(iota) // a purchase, rental or resale licence
	SubscriptionDataTag = TagType(iota) // a recurring subscription

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// byte sizes for various fields
const (
	maxContentIdLength      = 64
	maxStorageLocatorLength = 64

	tagSize     = 1                           // all defined tags fit one Varint64 byte
	uint64Size  = 8                           // fixed width big endian
	accountSize = 1 + 1 + 32                  // length prefix + key variant + Ed25519 key
	expirySize  = 1 + uint64Size              // presence tag + timestamp, always reserved
	stringSize  = util.Varint64MaximumBytes   // worst case length prefix
)

// maximum packed sizes, for storage pre-allocation
const (
	PlatformDataMaximumSize = tagSize + accountSize + 3*uint64Size

	ContentDataMaximumSize = tagSize +
		stringSize + maxContentIdLength + // id
		accountSize + // creator
		stringSize + maxStorageLocatorLength + // storage locator
		uint64Size + // price
		1 + // royalty percentage
		uint64Size + // sales count
		1 + // active
		uint64Size + // created at
		1 + // rental enabled
		uint64Size + // rental price
		uint64Size + // rental duration
		1 // subscription tier

	LicenceDataMaximumSize = tagSize +
		accountSize + // buyer
		IdentifierLength + // content identifier
		uint64Size + // price
		uint64Size + // timestamp
		1 + // resale rights
		1 + // purchase type
		expirySize // optional expiration

	SubscriptionDataMaximumSize = tagSize +
		accountSize + // subscriber
		1 + // tier
		2*uint64Size + // start and expiration times
		1 // active
)

// PurchaseType - how a licence was obtained
type PurchaseType uint8

// enumerate the kinds of licence
const (
	FullPurchase = PurchaseType(iota)
	Rental       = PurchaseType(iota)
)

// String - the name of a purchase type
func (purchaseType PurchaseType) String() string {
	switch purchaseType {
	case FullPurchase:
		return "FullPurchase"
	case Rental:
		return "Rental"
	default:
		return "*unknown*"
	}
}

// Expiry - a tagged optional expiration timestamp
//
// absence is distinct from a zero timestamp and the packed form
// always reserves the full width
type Expiry struct {
	Present bool  `json:"present"`
	Unix    int64 `json:"unix"`
}

// NoExpiry - the absent expiration
func NoExpiry() Expiry {
	return Expiry{}
}

// ExpiryAt - an expiration at a specific unix time
func ExpiryAt(unix int64) Expiry {
	return Expiry{Present: true, Unix: unix}
}

// Expired - true only for a present expiration at or before now
func (expiry Expiry) Expired(now int64) bool {
	return expiry.Present && expiry.Unix <= now
}

// PlatformData - the platform singleton record
type PlatformData struct {
	Authority         *account.Account `json:"authority"`         // base58
	PlatformFee       uint64           `json:"platformFee"`       // flat fee per paid operation
	TotalContentCount uint64           `json:"totalContentCount"` // monotonic
	TotalSalesVolume  uint64           `json:"totalSalesVolume"`  // monotonic
}

// ContentData - a content listing record
type ContentData struct {
	Id                string           `json:"id"`                // utf-8, derivation key
	Creator           *account.Account `json:"creator"`           // base58, immutable
	StorageLocator    string           `json:"storageLocator"`    // opaque content-addressed store id
	Price             uint64           `json:"price"`             // whole currency units
	RoyaltyPercentage uint8            `json:"royaltyPercentage"` // 0..100
	SalesCount        uint64           `json:"salesCount"`        // monotonic
	Active            bool             `json:"active"`            // gate on all paid operations
	CreatedAt         int64            `json:"createdAt"`         // unix seconds
	RentalEnabled     bool             `json:"rentalEnabled"`
	RentalPrice       uint64           `json:"rentalPrice"`    // > 0 iff rental enabled
	RentalDuration    int64            `json:"rentalDuration"` // seconds, > 0 iff rental enabled
	SubscriptionTier  uint8            `json:"subscriptionTier"`
}

// LicenceData - the record of a completed purchase, rental or resale
type LicenceData struct {
	Buyer        *account.Account  `json:"buyer"`   // base58
	ContentId    ContentIdentifier `json:"content"` // derived content identifier
	Price        uint64            `json:"price"`   // price paid
	Timestamp    int64             `json:"timestamp"`
	ResaleRights bool              `json:"resaleRights"`
	PurchaseType PurchaseType      `json:"purchaseType"`
	Expiration   Expiry            `json:"expiration"` // absent for full purchases
}

// SubscriptionData - a recurring subscription record
type SubscriptionData struct {
	Subscriber     *account.Account `json:"subscriber"` // base58
	Tier           uint8            `json:"tier"`       // 1, 2 or 3
	StartTime      int64            `json:"startTime"`
	ExpirationTime int64            `json:"expirationTime"`
	Active         bool             `json:"active"`
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *PlatformData, PlatformData:
		return "PlatformData", true

	case *ContentData, ContentData:
		return "ContentData", true

	case *LicenceData, LicenceData:
		return "LicenceData", true

	case *SubscriptionData, SubscriptionData:
		return "SubscriptionData", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed to its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
