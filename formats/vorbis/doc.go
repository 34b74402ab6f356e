// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Source using
// github.com/jfreymuth/oggvorbis. Any channel count and sample rate the
// stream declares is passed through unchanged.
package vorbis
