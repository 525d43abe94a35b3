// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package website serves the yamlmarkup playground: a static page, a set of
example documents and a POST /parse endpoint that turns YAML into events.

Parsing itself is injected through ServerOpts so that the same server runs
in-process (yamlmarkup website) or behind AWS Lambda.
*/
package website
