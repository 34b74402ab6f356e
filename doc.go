// SPDX-License-Identifier: EPL-2.0

// Package audiostudio turns audio from any source into a canonical 16-bit PCM
// WAV file.
//
// The building blocks live in subpackages:
//
//	audio          planar SampleBuffer, Source streams, resampling, downmix
//	formats/wav    WAV encoder plus streaming and go-audio backed decoders
//	formats/mp3    MP3 Source (go-mp3)
//	formats/vorbis Ogg Vorbis Source (oggvorbis)
//	formats/aiff   AIFF Source (go-audio/aiff)
//	speech         placeholder speech generator
//	timeline       media library and slide timeline bookkeeping
//
// Render wires them together for the common case:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	data, err := audiostudio.Render(src, audiostudio.Options{SampleRate: 16000, Mono: true})
//
// The result is a complete 44-byte-header WAV file that any player accepts.
package audiostudio
