// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a unit of work over the record pools
//
// all writes staged between Begin and Commit are applied as a single
// database batch; Abort drops every staged write
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

// TransactionImpl - transaction over the single market database
type TransactionImpl struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &TransactionImpl{
		dataAccess: dataAccess,
	}
}

// Begin - claim the underlying batch
func (t *TransactionImpl) Begin() error {
	return t.dataAccess.Begin()
}

// Put - stage a write into a pool
func (t *TransactionImpl) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.put(key, value)
}

// Delete - stage a removal from a pool
func (t *TransactionImpl) Delete(pool *PoolHandle, key []byte) {
	pool.remove(key)
}

// Get - read a value, seeing staged writes
func (t *TransactionImpl) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

// Has - check existence, seeing staged writes
func (t *TransactionImpl) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}

// Commit - atomically apply every staged write
func (t *TransactionImpl) Commit() error {
	return t.dataAccess.Commit()
}

// Abort - drop every staged write
func (t *TransactionImpl) Abort() {
	t.dataAccess.Abort()
}
