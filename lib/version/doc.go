// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for Gridview
// binaries.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" when the tree had uncommitted changes
//   - [BuildTime] -- UTC build timestamp
//   - [Version] -- semantic version, set manually for releases
//
// [Info] formats these for --version output.
package version
