// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk record store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++              = concatenation of byte data
// 3. identifier      = derived key as 32 byte SHA3-256 (see marketrecord)
//
// Pools:
//
//   P ++ platform key            - the platform singleton
//                                  data: packed platform record
//
//   C ++ content identifier     - content listings
//                                  data: packed content record
//
//   L ++ licence identifier     - purchase and rental licences
//                                  data: packed licence record
//
//   S ++ subscription identifier - subscriptions
//                                  data: packed subscription record
//
// Testing:
//   Z ++ key                     - testing data
package storage
