// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file),
a line number and a column within that source.

Every markup event and every parse error carries a Position so that a consumer
can point the user back at the exact entry that produced it. The source line
itself can be cached on the Position (see SetLine) for richer error output.

The zero-value of Position (can be created using NewUnknownPosition())
represents a location that is not known.
*/
package filepos
