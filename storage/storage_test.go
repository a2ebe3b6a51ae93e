// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/slydr-network/slydrd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) {
	removeFiles()
	os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise failed: %s", err)
	}

	// open database
	if err := storage.Initialise(databaseFileName, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise failed: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("key-one")
	data := []byte("data-one")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin failed: %s", err)
	}
	trx.Put(p, key, data)
	if err := trx.Commit(); nil != err {
		t.Fatalf("transaction commit failed: %s", err)
	}

	d := p.Get(key)
	if nil == d {
		t.Fatalf("no data returned")
	}
	if !bytes.Equal(d, data) {
		t.Fatalf("actual: %q  expected: %q", d, data)
	}
	if !p.Has(key) {
		t.Fatalf("has: missing key: %q", key)
	}

	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin failed: %s", err)
	}
	trx.Delete(p, key)
	if err := trx.Commit(); nil != err {
		t.Fatalf("transaction commit failed: %s", err)
	}

	if nil != p.Get(key) {
		t.Fatalf("unexpected data after delete")
	}
	if p.Has(key) {
		t.Fatalf("has: unexpected key after delete: %q", key)
	}
}

func TestAbortDiscardsStagedWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("key-abort")
	data := []byte("data-abort")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin failed: %s", err)
	}
	trx.Put(p, key, data)

	// staged write is visible inside the transaction
	if !trx.Has(p, key) {
		t.Fatalf("has: missing staged key: %q", key)
	}

	trx.Abort()

	if nil != p.Get(key) {
		t.Fatalf("unexpected data after abort")
	}
	if p.Has(key) {
		t.Fatalf("has: unexpected key after abort: %q", key)
	}
}

func TestTransactionInUse(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin failed: %s", err)
	}

	_, err = storage.NewDBTransaction()
	if nil == err {
		t.Fatalf("expected in-use error on second begin")
	}

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin after abort failed: %s", err)
	}
	trx.Abort()
}

func TestPrefixSeparation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")
	contentData := []byte("content-record")
	licenceData := []byte("licence-record")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin failed: %s", err)
	}
	trx.Put(storage.Pool.Contents, key, contentData)
	trx.Put(storage.Pool.Licences, key, licenceData)
	if err := trx.Commit(); nil != err {
		t.Fatalf("transaction commit failed: %s", err)
	}

	if d := storage.Pool.Contents.Get(key); !bytes.Equal(d, contentData) {
		t.Fatalf("contents: actual: %q  expected: %q", d, contentData)
	}
	if d := storage.Pool.Licences.Get(key); !bytes.Equal(d, licenceData) {
		t.Fatalf("licences: actual: %q  expected: %q", d, licenceData)
	}
	if storage.Pool.Platform.Has(key) {
		t.Fatalf("platform: unexpected key: %q", key)
	}
}
