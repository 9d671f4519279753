// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when a textual token is empty, non-numeric or out of
	// range for the requested scalar type, or when a list has the wrong token count.
	ErrParse = errors.New("scalar: parse failure")

	// ErrBufferSize is returned when a binary buffer does not hold exactly the bytes the
	// fixed layout of the decoded value requires.
	ErrBufferSize = errors.New("scalar: unexpected buffer size")
)

// parseErrorf wraps ErrParse with the offending token for diagnostics.
func parseErrorf(token string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %q", ErrParse, token)
	}
	return fmt.Errorf("%w: %q: %v", ErrParse, token, cause)
}
