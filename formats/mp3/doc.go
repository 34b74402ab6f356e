// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into an audio.Source.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	buf, err := audio.Collect(src)
//	data, err := wav.Encode(buf)
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// 16-bit stereo; samples are scaled to [-1, 1].
package mp3
