// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast settlement events to subscribers
//
// events queued by the market handlers are drained from the message
// bus and sent on a ZeroMQ PUB socket as two frames: the event topic
// and a JSON payload
package publish
