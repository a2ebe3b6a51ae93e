// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/slydr-network/slydrd/fault"
)

var (
	errExistsOne   = fault.ExistsError("exists one")
	errExistsTwo   = fault.ExistsError("exists two")
	errInvalidOne  = fault.InvalidError("invalid one")
	errInvalidTwo  = fault.InvalidError("invalid two")
	errNotFoundOne = fault.NotFoundError("not found one")
	errNotFoundTwo = fault.NotFoundError("not found two")
	errProcessOne  = fault.ProcessError("process one")
	errProcessTwo  = fault.ProcessError("process two")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{errExistsOne, true, false, false, false},
		{errExistsTwo, true, false, false, false},
		{errInvalidOne, false, true, false, false},
		{errInvalidTwo, false, true, false, false},
		{errNotFoundOne, false, false, true, false},
		{errNotFoundTwo, false, false, true, false},
		{errProcessOne, false, false, false, true},
		{errProcessTwo, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// the taxonomy surfaced to marketplace callers must stay stable
func TestTaxonomyMessages(t *testing.T) {
	messageList := []struct {
		err      error
		expected string
	}{
		{fault.InvalidFeeAmount, "platform fee must be greater than zero"},
		{fault.InvalidContentId, "content id cannot be empty"},
		{fault.InvalidArweaveId, "storage locator cannot be empty"},
		{fault.InvalidPrice, "price must be greater than zero"},
		{fault.InvalidRoyaltyPercentage, "royalty percentage must be between 0 and 100"},
		{fault.InvalidRentalPrice, "rental price must be greater than zero"},
		{fault.InvalidRentalDuration, "rental duration must be greater than zero"},
		{fault.InvalidSubscriptionTier, "invalid subscription tier"},
		{fault.ContentNotActive, "content is not active"},
		{fault.RentalNotEnabled, "rental is not enabled for this content"},
		{fault.NoResaleRights, "no resale rights for this content"},
		{fault.PurchaseExpired, "purchase has expired"},
		{fault.NotAuthorized, "not authorized to perform this action"},
		{fault.InsufficientFunds, "insufficient funds to complete the transfer"},
	}

	for i, m := range messageList {
		if m.err.Error() != m.expected {
			t.Errorf("%d: message: %q  expected: %q", i, m.err.Error(), m.expected)
		}
	}
}
