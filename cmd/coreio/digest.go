// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/coreio"
	"code.hybscloud.com/coreio/internal/pipeline"
	"code.hybscloud.com/coreio/osio"
)

// maxOpenDigests bounds how many files are hashed at once.
const maxOpenDigests = 8

// digestFiles hashes every file concurrently; each goroutine owns its file
// and reads it through a bufSize buffer (coreio.DefaultBufferSize if not
// positive).
func digestFiles(names []string, bufSize int) ([]uint64, error) {
	sums := make([]uint64, len(names))
	var g errgroup.Group
	g.SetLimit(maxOpenDigests)
	for i, name := range names {
		g.Go(func() error {
			f, err := osio.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()
			var buf []byte
			if bufSize > 0 {
				buf = make([]byte, bufSize)
			}
			sum, _, err := pipeline.Digest(coreio.NewBufferedReader(f, buf))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}
