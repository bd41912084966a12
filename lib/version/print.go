// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime/debug"
)

// Print writes --version output for the named binary to stdout.
// When the build was not stamped via -ldflags, falls back to VCS
// metadata from the Go build info, if present.
func Print(binaryName string) {
	fillFromBuildInfo()
	fmt.Printf("%s %s\n", binaryName, Info())
}

// fillFromBuildInfo populates unset ldflags variables from the
// module's embedded VCS settings. A `go install` build has no ldflags
// stamping but still carries vcs.revision and vcs.time.
func fillFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if GitCommit == "unknown" && len(setting.Value) >= 12 {
				GitCommit = setting.Value[:12]
			}
		case "vcs.modified":
			if GitDirty == "false" {
				GitDirty = setting.Value
			}
		case "vcs.time":
			if BuildTime == "unknown" {
				BuildTime = setting.Value
			}
		}
	}
}
