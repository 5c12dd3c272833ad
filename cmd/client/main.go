// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command confctl is the command-line client of the config-hub server.
package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
