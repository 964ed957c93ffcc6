// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package osio

import (
	"errors"

	"golang.org/x/sys/unix"

	"code.hybscloud.com/coreio"
)

// classify tags err with a coreio kind. Errors that already carry a kind
// are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if coreio.KindOf(err) != coreio.KindOther {
		return err
	}
	switch {
	case errors.Is(err, unix.EINTR):
		return coreio.WrapError(coreio.KindInterrupted, err)
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EWOULDBLOCK):
		return coreio.WrapError(coreio.KindWouldBlock, err)
	case errors.Is(err, unix.EINVAL):
		return coreio.WrapError(coreio.KindInvalidInput, err)
	}
	return coreio.StdError(err)
}
