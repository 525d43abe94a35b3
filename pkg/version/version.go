// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package version describes the version of this build of yamlmarkup.
*/
package version

// Version is set at build time:
//
//	go build -ldflags "-X carvel.dev/yamlmarkup/pkg/version.Version=v1.2.3" ./cmd/yamlmarkup
var Version = "develop"
