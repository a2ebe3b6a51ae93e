// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/slydr-network/slydrd/version"
)

// Node - type for the RPC node information service
type Node struct {
	log     *logger.L
	limiter *rate.Limiter
	start   time.Time
}

// Node.Info
// ---------

// InfoArguments - no arguments
type InfoArguments struct{}

// InfoReply - some information about this node
type InfoReply struct {
	Connections uint64 `json:"connections"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := rateLimit(node.limiter); nil != err {
		return err
	}

	reply.Connections = connectionCount.Uint64()
	reply.Version = version.Version
	reply.Uptime = time.Since(node.start).String()

	return nil
}
