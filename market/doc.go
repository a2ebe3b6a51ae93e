// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - the settlement handlers
//
// each operation validates its inputs, settles value through the
// ledger and stages every record write in one storage transaction;
// the records become visible only when the transaction commits so a
// failed operation leaves no trace
package market
