// SPDX-License-Identifier: EPL-2.0

// Package wav encodes and decodes RIFF/WAVE files.
//
// # Encoding
//
// Encode turns an audio.SampleBuffer into a complete 16-bit PCM WAV file.
// The output is always exactly 44 + frames*channels*2 bytes: the canonical
// 44-byte header followed by the interleaved samples.
//
//	buf, _ := audio.NewSampleBuffer(44100, left, right)
//	data, err := wav.Encode(buf)
//
// Header layout (little-endian):
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + data size
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     channels
//	24      4     sample rate
//	28      4     sample rate * channels * 2
//	32      2     channels * 2
//	34      2     16
//	36      4     "data"
//	40      4     frames * channels * 2
//
// Each sample is clamped to [-1, 1], scaled by 32768 when negative and by
// 32767 otherwise, and truncated toward zero. So -1.0 becomes -32768 and 1.0
// becomes 32767.
//
// Write produces the same bytes directly into an io.Writer, and WriteWAV16
// writes mono samples that are already int16.
//
// A malformed buffer (no channels, a non-positive rate, channels of different
// lengths, or a geometry that does not fit the RIFF size fields) is rejected
// with an error wrapping audio.ErrInvalidInput.
//
// # Decoding
//
// Decoder streams 16-bit PCM files as an audio.Source and skips chunks it does
// not need:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// ReadBuffer loads a whole 8, 16, 24 or 32-bit PCM file into a SampleBuffer
// through github.com/go-audio/wav. 16-bit data is mapped back with the exact
// inverse of the encoder's scaling, so an encoded buffer reads back within
// one quantisation step.
//
// ParseHeader inspects the canonical 44-byte header written by this package.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not RIFF/WAVE
//   - ErrUnsupportedWavLayout: the fmt chunk is missing, short or misplaced
//   - ErrOnlyPCM16bitSupported: the streaming decoder only reads 16-bit PCM
//   - ErrUnsupportedWavChunks: no data chunk was found
//   - ErrUnsupportedBitDepth: ReadBuffer met a bit depth it cannot scale
package wav
