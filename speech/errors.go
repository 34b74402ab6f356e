// SPDX-License-Identifier: EPL-2.0

package speech

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid speech request")
	ErrUnknownVoice   = errors.New("unknown voice")
	ErrUnknownEmotion = errors.New("unknown emotion")
)
