// SPDX-License-Identifier: EPL-2.0

package timeline

import "errors"

var (
	ErrMediaNotFound     = errors.New("media not found")
	ErrItemNotFound      = errors.New("timeline item not found")
	ErrUnknownTransition = errors.New("unknown transition")
	ErrInvalidMedia      = errors.New("invalid media")
)
