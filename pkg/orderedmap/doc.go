// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Mappings built from parse events use it so that key order survives into
rendered output.
*/
package orderedmap
