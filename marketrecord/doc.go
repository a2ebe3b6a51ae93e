// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marketrecord - persistent records of the marketplace
// settlement core and their derived storage identifiers
//
// Every record other than the platform singleton is located by a
// deterministic SHA3-256 derivation over a namespace tag and the
// record's semantic keys, never by a caller supplied location.  A
// record packs to a bounded byte layout: a Varint64 record tag,
// length prefixed byte fields and fixed width eight byte big endian
// integers, so the storage space of any record can be reserved up
// front from the …MaximumSize constants.
package marketrecord
