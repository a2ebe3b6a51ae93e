// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"math"

	"github.com/slydr-network/slydrd/fault"
)

// SaleSplit - the two-way division of a sale amount
type SaleSplit struct {
	CreatorAmount uint64
	PlatformFee   uint64
}

// ResaleSplit - the three-way division of a resale price
type ResaleSplit struct {
	RoyaltyAmount uint64
	SellerAmount  uint64
	PlatformFee   uint64
}

// SaleShares - divide a sale amount between creator and platform
//
// the platform fee is a fixed amount set at platform initialisation;
// the amount must exceed the fee or nothing reaches the creator
func SaleShares(amount uint64, platformFee uint64) (SaleSplit, error) {
	if amount <= platformFee {
		return SaleSplit{}, fault.InvalidPrice
	}
	return SaleSplit{
		CreatorAmount: amount - platformFee,
		PlatformFee:   platformFee,
	}, nil
}

// ResaleShares - divide a resale price between creator, seller and platform
//
// royalty is rounded down: price * percentage / 100
func ResaleShares(price uint64, royaltyPercentage uint8, platformFee uint64) (ResaleSplit, error) {
	if royaltyPercentage > 100 {
		return ResaleSplit{}, fault.InvalidRoyaltyPercentage
	}

	if 0 != royaltyPercentage && price > math.MaxUint64/uint64(royaltyPercentage) {
		return ResaleSplit{}, fault.InvalidPrice
	}

	royalty := price * uint64(royaltyPercentage) / 100

	// royalty+platformFee can wrap, so subtract instead of adding
	if royalty > price || platformFee > price-royalty {
		return ResaleSplit{}, fault.InvalidPrice
	}

	return ResaleSplit{
		RoyaltyAmount: royalty,
		SellerAmount:  price - royalty - platformFee,
		PlatformFee:   platformFee,
	}, nil
}
