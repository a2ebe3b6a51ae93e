// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC 1.0 services over TLS
//
// settlement operations and record queries are exposed through
// net/rpc with the JSON codec; every service method is rate limited
// and write operations are refused in read-only mode
package rpc
