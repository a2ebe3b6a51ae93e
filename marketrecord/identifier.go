// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketrecord

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/slydr-network/slydrd/account"
	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/util"
)

// IdentifierLength - byte size of all derived identifiers
const IdentifierLength = 32

// namespace seeds for derivation
//
// purchase and rental are distinct namespaces so one account may
// simultaneously hold a purchase and a rental of the same content
const (
	platformSeed     = "platform"
	contentSeed      = "content"
	purchaseSeed     = "purchase"
	rentalSeed       = "rental"
	subscriptionSeed = "subscription"
)

// ContentIdentifier - the derived storage identifier of a content record
type ContentIdentifier [IdentifierLength]byte

// LicenceIdentifier - the derived storage identifier of a licence record
type LicenceIdentifier [IdentifierLength]byte

// SubscriptionIdentifier - the derived storage identifier of a subscription record
type SubscriptionIdentifier [IdentifierLength]byte

// derive - SHA3-256 over: seed ‖ (Varint64 length ‖ bytes)…
//
// every part is length prefixed so adjacent keys cannot be confused
// by shifting bytes between them
func derive(seed string, parts ...[]byte) [IdentifierLength]byte {
	h := sha3.New256()
	h.Write([]byte(seed))
	for _, part := range parts {
		h.Write(util.ToVarint64(uint64(len(part))))
		h.Write(part)
	}
	var digest [IdentifierLength]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// PlatformKey - the fixed storage key of the platform singleton
func PlatformKey() []byte {
	key := derive(platformSeed)
	return key[:]
}

// NewContentIdentifier - derive the identifier of a content record
// from its unique id string
func NewContentIdentifier(contentId string) ContentIdentifier {
	return ContentIdentifier(derive(contentSeed, []byte(contentId)))
}

// NewPurchaseIdentifier - derive the identifier of a full purchase
// licence from the buyer and the content
func NewPurchaseIdentifier(buyer *account.Account, contentId ContentIdentifier) LicenceIdentifier {
	return LicenceIdentifier(derive(purchaseSeed, buyer.Bytes(), contentId[:]))
}

// NewRentalIdentifier - derive the identifier of a rental licence
// from the renter and the content
func NewRentalIdentifier(renter *account.Account, contentId ContentIdentifier) LicenceIdentifier {
	return LicenceIdentifier(derive(rentalSeed, renter.Bytes(), contentId[:]))
}

// NewSubscriptionIdentifier - derive the identifier of a
// subscription record from the subscriber
func NewSubscriptionIdentifier(subscriber *account.Account) SubscriptionIdentifier {
	return SubscriptionIdentifier(derive(subscriptionSeed, subscriber.Bytes()))
}

// String - convert a binary content identifier to hex string for use by the fmt package (for %s)
func (contentId ContentIdentifier) String() string {
	return hex.EncodeToString(contentId[:])
}

// GoString - convert a binary content identifier to hex string for use by the fmt package (for %#v)
func (contentId ContentIdentifier) GoString() string {
	return "<content:" + hex.EncodeToString(contentId[:]) + ">"
}

// Scan - convert a hex text representation to a content identifier
// for use by the format package scan routines
func (contentId *ContentIdentifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(IdentifierLength) {
		return fault.NotContentId
	}

	byteCount, err := hex.Decode(contentId[:], token)
	if nil != err {
		return err
	}
	if IdentifierLength != byteCount {
		return fault.NotContentId
	}
	return nil
}

// MarshalText - convert a content identifier to hex text
func (contentId ContentIdentifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(contentId))
	buffer := make([]byte, size)
	hex.Encode(buffer, contentId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a content identifier
func (contentId *ContentIdentifier) UnmarshalText(s []byte) error {
	if len(contentId) != hex.DecodedLen(len(s)) {
		return fault.NotContentId
	}
	byteCount, err := hex.Decode(contentId[:], s)
	if nil != err {
		return err
	}
	if IdentifierLength != byteCount {
		return fault.NotContentId
	}
	return nil
}

// ContentIdentifierFromBytes - convert and validate a binary byte
// slice to a content identifier
func ContentIdentifierFromBytes(contentId *ContentIdentifier, buffer []byte) error {
	if IdentifierLength != len(buffer) {
		return fault.NotContentId
	}
	copy(contentId[:], buffer)
	return nil
}

// String - convert a binary licence identifier to hex string for use by the fmt package (for %s)
func (licenceId LicenceIdentifier) String() string {
	return hex.EncodeToString(licenceId[:])
}

// MarshalText - convert a licence identifier to hex text
func (licenceId LicenceIdentifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(licenceId))
	buffer := make([]byte, size)
	hex.Encode(buffer, licenceId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a licence identifier
func (licenceId *LicenceIdentifier) UnmarshalText(s []byte) error {
	if len(licenceId) != hex.DecodedLen(len(s)) {
		return fault.NotLicenceId
	}
	byteCount, err := hex.Decode(licenceId[:], s)
	if nil != err {
		return err
	}
	if IdentifierLength != byteCount {
		return fault.NotLicenceId
	}
	return nil
}

// String - convert a binary subscription identifier to hex string for use by the fmt package (for %s)
func (subscriptionId SubscriptionIdentifier) String() string {
	return hex.EncodeToString(subscriptionId[:])
}

// MarshalText - convert a subscription identifier to hex text
func (subscriptionId SubscriptionIdentifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(subscriptionId))
	buffer := make([]byte, size)
	hex.Encode(buffer, subscriptionId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a subscription identifier
func (subscriptionId *SubscriptionIdentifier) UnmarshalText(s []byte) error {
	if len(subscriptionId) != hex.DecodedLen(len(s)) {
		return fault.NotSubscriptionId
	}
	byteCount, err := hex.Decode(subscriptionId[:], s)
	if nil != err {
		return err
	}
	if IdentifierLength != byteCount {
		return fault.NotSubscriptionId
	}
	return nil
}
