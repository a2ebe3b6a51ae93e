// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
)

// rate limits per service in requests per second
const (
	rateLimitMarket   = 50
	rateBurstMarket   = 20
	rateLimitPlatform = 200
	rateBurstPlatform = 100
	rateLimitNode     = 200
	rateBurstNode     = 100
)

// createServer - create and register all of the services
func createServer(log *logger.L, readOnly bool, start time.Time) *rpc.Server {

	marketService := &Market{
		log:      log,
		limiter:  rate.NewLimiter(rate.Limit(rateLimitMarket), rateBurstMarket),
		readOnly: readOnly,
	}

	platformService := &Platform{
		log:      log,
		limiter:  rate.NewLimiter(rate.Limit(rateLimitPlatform), rateBurstPlatform),
		readOnly: readOnly,
	}

	nodeService := &Node{
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimitNode), rateBurstNode),
		start:   start,
	}

	server := rpc.NewServer()

	server.Register(marketService)
	server.Register(platformService)
	server.Register(nodeService)

	return server
}
