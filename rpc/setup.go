// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/slydr-network/slydrd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Configuration - configuration file data for RPC setup
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener *rpcListener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC server
func Initialise(configuration *Configuration, readOnly bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New(logName)
	globalData.log = log
	log.Info("starting…")

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return fault.MissingParameters
	}

	tlsConfiguration, certificateFingerprint, err := getCertificate(log, logName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	server := createServer(log, readOnly, time.Now())

	globalData.listener = &rpcListener{
		log:             log,
		server:          server,
		maxConnections:  configuration.MaximumConnections,
		tlsConfig:       tlsConfiguration,
		listenIPAndPort: configuration.Listen,
	}

	if err := globalData.listener.serve(); nil != err {
		globalData.listener.close()
		return err
	}

	globalData.initialised = true
	return nil
}

// Finalise - stop the RPC server
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.listener.close()
	globalData.initialised = false
	globalData.log.Flush()

	return nil
}
