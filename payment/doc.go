// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - settlement arithmetic and transfer execution
//
// a sale splits the amount two ways: creator and platform; a resale
// splits three ways: creator royalty, seller remainder and platform
// fee.  All splits are validated before any value moves so a split
// that cannot balance never produces a partial transfer.
package payment
