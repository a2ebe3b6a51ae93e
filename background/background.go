// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - handle a group of tasks that run in the
// background and are shut down together
package background

import (
	"sync"
)

// T - handle for later stopping the processes
type T struct {
	sync.WaitGroup
	finish chan struct{}
}

// Process - interface for background processes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finish: make(chan struct{}),
	}

	// start each background
	for _, p := range processes {
		register.Add(1)
		go func(p Process) {
			defer register.Done()
			p.Run(args, register.finish)
		}(p)
	}
	return register
}

// Stop - stop the background processes and wait until they all finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	close(t.finish)
	t.Wait()
}
