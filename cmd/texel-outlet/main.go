// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texel-outlet/main.go
// Summary: Entry point for the texel-outlet command.
// Usage: `texel-outlet run scenario.yaml` or `texel-outlet tui`.

package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	setVersion(version)
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
