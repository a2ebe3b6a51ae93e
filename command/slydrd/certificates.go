// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Slydr Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/slydr-network/slydrd/fault"
	"github.com/slydr-network/slydrd/util"
)

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileExists
	}

	org := "slydrd self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0o666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0o600); nil != err {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}
