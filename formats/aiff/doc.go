// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files into an audio.Source.
//
// Parsing is delegated to github.com/go-audio/aiff. Integer samples at 8, 16,
// 24 and 32 bits are scaled by their full-scale magnitude, so the most
// negative value maps to -1.0. Other depths fail with ErrUnsupportedBitDepth.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
package aiff
