// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audiostudio/audio"
)

// mockMP3Reader hands out PCM bytes in chunks of at most step bytes, which
// may split a frame.
type mockMP3Reader struct {
	sampleRate int
	pcm        []byte
	step       int
	err        error
}

func newMockReader(rate, step int, samples ...int16) *mockMP3Reader {
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: rate, pcm: pcm, step: step}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.pcm) == 0 {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.pcm))
	if m.step > 0 {
		n = min(n, m.step)
	}
	copy(buf, m.pcm[:n])
	m.pcm = m.pcm[n:]

	if len(m.pcm) == 0 {
		return n, io.EOF
	}
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an mp3 stream"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(44100, 0), sampleRate: 44100, buf: make([]byte, 8192)}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(44100, 0, 0, 32767, -16384, -32768), sampleRate: 44100}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 1, -0.5, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_SplitFrames(t *testing.T) {
	t.Parallel()

	// 3-byte reads never deliver a whole stereo frame in one go.
	samples := []int16{100, -100, 200, -200, 300, -300}
	src := &source{dec: newMockReader(22050, 3, samples...), sampleRate: 22050}

	buf, err := audio.Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if buf.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", buf.Frames())
	}
	if got, want := buf.Sample(1, 2), float32(-300)/32768; got != want {
		t.Errorf("Sample(1, 2) = %v, want %v", got, want)
	}
}

func TestSource_ReadSamples_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(44100, 0, 1, 2), sampleRate: 44100}
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	mock := newMockReader(44100, 0, 1, 2)
	mock.err = boom

	src := &source{dec: mock, sampleRate: 44100}
	if _, err := src.ReadSamples(make([]float32, 2)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(44100, 0, 1, 2), sampleRate: 44100}
	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)
	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		src := &source{dec: newMockReader(44100, 0, samples...), sampleRate: 44100, buf: make([]byte, 8192)}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
