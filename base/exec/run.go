// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// Args returns the given string parsed into separate args
// that can be passed into run commands, following
// standard shell quoting rules.
func Args(str string) ([]string, error) {
	args, err := shellwords.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("parsing arguments %q: %w", str, err)
	}
	return args, nil
}
