// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var stdin = &onceReader{name: "Standard input", reader: os.Stdin}

// onceReader hands out the contents of a stream exactly once.
type onceReader struct {
	name   string
	reader io.Reader

	lock sync.Mutex
	read bool
}

func (r *onceReader) ReadAll() ([]byte, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.read {
		return nil, fmt.Errorf("%s has already been read, has the '-' argument been used in more than one flag?", r.name)
	}
	r.read = true

	bs, err := io.ReadAll(r.reader)
	if err != nil {
		return nil, fmt.Errorf("Reading %s: %s", r.name, err)
	}
	return bs, nil
}

// ReadStdin returns all of standard input. Only the first call succeeds.
func ReadStdin() ([]byte, error) {
	return stdin.ReadAll()
}
