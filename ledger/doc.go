// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - value transfer between accounts
//
// the market settlement handlers never move value themselves; they
// compute the split and hand each leg to a Ledger.  A transfer either
// moves the full amount or fails leaving both balances untouched.
package ledger
