// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audiostudio/audio"
	"github.com/ik5/audiostudio/formats/aiff"
	"github.com/ik5/audiostudio/formats/mp3"
	"github.com/ik5/audiostudio/formats/vorbis"
	"github.com/ik5/audiostudio/formats/wav"
)

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// openSource decodes path with the decoder registered for its extension. The
// Source owns the file.
func openSource(reg *audio.Registry, path string) (audio.Source, error) {
	dec, err := reg.DecoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return src, nil
}

// loadBuffer reads a whole file. WAV goes through go-audio so 8, 24 and 32-bit
// files are accepted too; everything else streams through the registry.
func loadBuffer(reg *audio.Registry, path string) (*audio.SampleBuffer, error) {
	if isWAV(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		defer f.Close()

		buf, err := wav.ReadBuffer(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return buf, nil
	}

	src, err := openSource(reg, path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return audio.Collect(src)
}

func isWAV(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return true
	}
	return false
}
