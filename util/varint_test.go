// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/slydr-network/slydrd/util"
)

func TestVarint64(t *testing.T) {
	testList := []struct {
		value   uint64
		encoded []byte
	}{
		{0x00, []byte{0x00}},
		{0x01, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{0x05f5e100, []byte{0x80, 0xc2, 0xd7, 0x2f}}, // tier one price
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range testList {
		encoded := util.ToVarint64(item.value)
		if !bytes.Equal(encoded, item.encoded) {
			t.Errorf("%d: encoded: %x  expected: %x", i, encoded, item.encoded)
		}

		value, count := util.FromVarint64(item.encoded)
		if value != item.value || count != len(item.encoded) {
			t.Errorf("%d: decoded: %d (%d bytes)  expected: %d (%d bytes)",
				i, value, count, item.value, len(item.encoded))
		}
	}
}

func TestTruncatedVarint64(t *testing.T) {
	value, count := util.FromVarint64([]byte{0x80})
	if 0 != value || 0 != count {
		t.Errorf("truncated decode: %d, %d  expected: 0, 0", value, count)
	}
}

func TestClippedVarint64(t *testing.T) {
	value, count := util.ClippedVarint64([]byte{0x40}, 1, 64)
	if 64 != value || 1 != count {
		t.Errorf("clipped decode: %d, %d  expected: 64, 1", value, count)
	}

	// out of range
	value, count = util.ClippedVarint64([]byte{0x41}, 1, 64)
	if 0 != value || 0 != count {
		t.Errorf("clipped decode: %d, %d  expected: 0, 0", value, count)
	}
}
