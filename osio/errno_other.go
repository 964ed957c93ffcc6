// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package osio

import "code.hybscloud.com/coreio"

func classify(err error) error {
	return coreio.StdError(err)
}
