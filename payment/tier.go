// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"github.com/slydr-network/slydrd/fault"
)

// subscription tiers
const (
	BasicTier   uint8 = 1
	PremiumTier uint8 = 2
	CreatorTier uint8 = 3
)

// fixed monthly price for each tier in base currency units
const (
	basicTierPrice   uint64 = 100_000_000
	premiumTierPrice uint64 = 200_000_000
	creatorTierPrice uint64 = 500_000_000
)

// TierPrice - the fixed price of a subscription tier
func TierPrice(tier uint8) (uint64, error) {
	switch tier {
	case BasicTier:
		return basicTierPrice, nil
	case PremiumTier:
		return premiumTierPrice, nil
	case CreatorTier:
		return creatorTierPrice, nil
	default:
		return 0, fault.InvalidSubscriptionTier
	}
}
