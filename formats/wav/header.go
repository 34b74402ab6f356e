// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

// HeaderSize is the size of the canonical RIFF/WAVE header written by this
// package: RIFF descriptor (12 bytes), fmt chunk (24 bytes) and the data
// chunk header (8 bytes).
const HeaderSize = 44

const (
	formatPCM     = 1
	bitsPerSample = 16
	bytesPerPCM   = bitsPerSample / 8
)

// Header mirrors the fields of a canonical 44-byte PCM WAV header.
type Header struct {
	ChunkSize     uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// Frames is the number of sample frames the data chunk holds.
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize / uint32(h.BlockAlign))
}

// Duration is the play time implied by DataSize and ByteRate.
func (h Header) Duration() time.Duration {
	if h.ByteRate == 0 {
		return 0
	}
	return time.Duration(h.DataSize) * time.Second / time.Duration(h.ByteRate)
}

// putHeader fills dst[:HeaderSize] with a 16-bit PCM header.
func putHeader(dst []byte, channels uint16, sampleRate, dataSize uint32) {
	blockAlign := channels * bytesPerPCM

	// RIFF descriptor
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], 36+dataSize)
	copy(dst[8:12], "WAVE")

	// fmt chunk
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16)
	binary.LittleEndian.PutUint16(dst[20:22], formatPCM)
	binary.LittleEndian.PutUint16(dst[22:24], channels)
	binary.LittleEndian.PutUint32(dst[24:28], sampleRate)
	binary.LittleEndian.PutUint32(dst[28:32], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(dst[32:34], blockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)

	// data chunk header
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// ParseHeader reads a canonical 44-byte header. Files whose fmt chunk is not
// immediately followed by the data chunk are rejected with
// ErrUnsupportedWavChunks; use Decoder or ReadBuffer for those.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header is %d bytes, need %d", ErrNotWavFile, len(b), HeaderSize)
	}
	if !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}
	if !bytes.Equal(b[12:16], []byte("fmt ")) || binary.LittleEndian.Uint32(b[16:20]) != 16 {
		return Header{}, ErrUnsupportedWavLayout
	}
	if !bytes.Equal(b[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return Header{
		ChunkSize:     binary.LittleEndian.Uint32(b[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(b[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(b[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(b[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}
