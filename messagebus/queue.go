// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - a single queued event
type Message struct {
	From string
	Item interface{}
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)
)

// Send - queue an event without blocking
//
// returns false if the queue was full and the event was dropped
func Send(from string, item interface{}) bool {
	select {
	case queue <- Message{From: from, Item: item}:
		return true
	default:
		return false
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}
