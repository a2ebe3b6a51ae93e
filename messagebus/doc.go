// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queue carrying settlement events from the
// market handlers to the event publisher
//
// sending is fire-and-forget: a full queue drops the event rather
// than stalling settlement
package messagebus
