// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/logger"

	"github.com/slydr-network/slydrd/counter"
)

// count of active RPC connections
var connectionCount counter.Counter

type rpcListener struct {
	log             *logger.L
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	listenIPAndPort []string
	listeners       []net.Listener
}

// serve - start a TLS listener on each configured address
func (r *rpcListener) serve() error {
	for _, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		listener, err := tls.Listen("tcp", listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return err
		}
		r.listeners = append(r.listeners, listener)

		go doServeRPC(listener, r.server, r.maxConnections, r.log)
	}
	return nil
}

// close - stop accepting connections
func (r *rpcListener) close() {
	for _, listener := range r.listeners {
		listener.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Errorf("rpc.server terminated: accept error: %s", err)
			break
		}
		if connectionCount.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				conn.Close()
				connectionCount.Decrement()
			}()
		} else {
			connectionCount.Decrement()
			conn.Close()
		}
	}
	listen.Close()
	log.Error("RPC accept terminated")
}
