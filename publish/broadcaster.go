// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/slydr-network/slydrd/market"
	"github.com/slydr-network/slydrd/messagebus"
)

type broadcaster struct {
	log     *logger.L
	sockets []*zmq.Socket
}

// initialise the broadcaster
//
// one PUB socket is bound for each listen address
func (brdc *broadcaster) initialise(broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	brdc.sockets = make([]*zmq.Socket, 0, len(broadcast))
	for _, address := range broadcast {
		socket, err := zmq.NewSocket(zmq.PUB)
		if nil != err {
			log.Errorf("socket error: %s", err)
			brdc.close()
			return err
		}
		socket.SetLinger(0)
		if err := socket.Bind(address); nil != err {
			log.Errorf("bind: %q  error: %s", address, err)
			socket.Close()
			brdc.close()
			return err
		}
		log.Infof("publishing on: %q", address)
		brdc.sockets = append(brdc.sockets, socket)
	}

	return nil
}

// Run - wait for settlement events and publish each one
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			brdc.process(&item)
		}
	}
	brdc.close()
}

// publish one event as topic frame plus JSON payload frame
func (brdc *broadcaster) process(item *messagebus.Message) {
	topic := eventTopic(item.Item)
	payload, err := json.Marshal(item.Item)
	if nil != err {
		brdc.log.Errorf("marshal: %s  error: %s", topic, err)
		return
	}

	brdc.log.Infof("publishing: %s  data: %s", topic, payload)

	for _, socket := range brdc.sockets {
		_, err := socket.Send(topic, zmq.SNDMORE|zmq.DONTWAIT)
		if nil != err {
			brdc.log.Errorf("send topic: %s  error: %s", topic, err)
			continue
		}
		_, err = socket.SendBytes(payload, zmq.DONTWAIT)
		if nil != err {
			brdc.log.Errorf("send payload: %s  error: %s", topic, err)
		}
	}
}

func (brdc *broadcaster) close() {
	for _, socket := range brdc.sockets {
		socket.Close()
	}
	brdc.sockets = nil
}

// the PUB topic of an event
func eventTopic(item interface{}) string {
	switch item.(type) {
	case market.PlatformInitialised:
		return "platform.initialised"
	case market.ContentCreated:
		return "content.created"
	case market.ContentUpdated:
		return "content.updated"
	case market.ContentPurchased:
		return "content.purchased"
	case market.ContentRented:
		return "content.rented"
	case market.SubscriptionCreated:
		return "subscription.created"
	case market.ContentResold:
		return "content.resold"
	default:
		return "unknown"
	}
}
