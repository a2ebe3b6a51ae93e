// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - record creation collided with an existing record
	ExistsError GenericError
	// InvalidError - caller supplied an unacceptable value
	InvalidError GenericError
	// NotFoundError - referenced record does not exist
	NotFoundError GenericError
	// ProcessError - the operation could not be carried out
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised         = ExistsError("already initialised")
	CannotDecodeAccount        = InvalidError("cannot decode account")
	CertificateFileExists      = ExistsError("certificate file exists")
	ChecksumMismatch           = ProcessError("checksum mismatch")
	ContentIdTooLong           = InvalidError("content id too long")
	ContentNotActive           = InvalidError("content is not active")
	ContentNotFound            = NotFoundError("content not found")
	InsufficientFunds          = InvalidError("insufficient funds to complete the transfer")
	InvalidArweaveId           = InvalidError("storage locator cannot be empty")
	InvalidContentId           = InvalidError("content id cannot be empty")
	InvalidCount               = InvalidError("invalid count")
	InvalidFeeAmount           = InvalidError("platform fee must be greater than zero")
	InvalidItem                = InvalidError("invalid item")
	InvalidKeyLength           = InvalidError("invalid key length")
	InvalidKeyType             = InvalidError("invalid key type")
	InvalidPrice               = InvalidError("price must be greater than zero")
	InvalidRentalDuration      = InvalidError("rental duration must be greater than zero")
	InvalidRentalPrice         = InvalidError("rental price must be greater than zero")
	InvalidRoyaltyPercentage   = InvalidError("royalty percentage must be between 0 and 100")
	InvalidSignature           = InvalidError("invalid signature")
	InvalidStructPointer       = InvalidError("invalid struct pointer")
	InvalidSubscriptionTier    = InvalidError("invalid subscription tier")
	KeyFileExists              = ExistsError("key file exists")
	LicenceNotFound            = NotFoundError("licence not found")
	MissingParameters          = InvalidError("missing parameters")
	NoResaleRights             = InvalidError("no resale rights for this content")
	NotAuthorized              = InvalidError("not authorized to perform this action")
	NotAvailableInReadOnlyMode = InvalidError("not available in read only mode")
	NotContentId               = InvalidError("not content id")
	NotInitialised             = NotFoundError("not initialised")
	NotLicenceId               = InvalidError("not licence id")
	NotPublicKey               = InvalidError("not public key")
	NotSubscriptionId          = InvalidError("not subscription id")
	NotTransactionPack         = InvalidError("not transaction pack")
	PlatformNotFound           = NotFoundError("platform not found")
	PurchaseExpired            = InvalidError("purchase has expired")
	RateLimiting               = ProcessError("rate limiting")
	RecordAlreadyExists        = ExistsError("record already exists")
	RentalNotEnabled           = InvalidError("rental is not enabled for this content")
	StorageLocatorTooLong      = InvalidError("storage locator too long")
	SubscriptionNotFound       = NotFoundError("subscription not found")
	TransactionInUse           = ProcessError("transaction in use")
	WrongNetworkForPublicKey   = InvalidError("wrong network for public key")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string { return string(e) }

// Error - the error interface method
func (e InvalidError) Error() string { return string(e) }

// Error - the error interface method
func (e NotFoundError) Error() string { return string(e) }

// Error - the error interface method
func (e ProcessError) Error() string { return string(e) }

// IsErrExists - determine if an error is in the exists class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an error is in the invalid class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if an error is in the not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if an error is in the process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
