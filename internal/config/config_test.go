// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Speech.Voice != "male-deep" || cfg.Speech.Emotion != "neutral" {
		t.Errorf("speech defaults = %q/%q", cfg.Speech.Voice, cfg.Speech.Emotion)
	}
	if cfg.Speech.Speed != 1.0 || cfg.Speech.SampleRate != 44100 {
		t.Errorf("speech speed/rate = %g/%d", cfg.Speech.Speed, cfg.Speech.SampleRate)
	}
	if cfg.Audio.SampleRate != 0 || cfg.Audio.Mono {
		t.Errorf("audio defaults = %+v, want zero value", cfg.Audio)
	}
	if cfg.Output.Dir != "." || cfg.Log.Level != "info" {
		t.Errorf("output/log defaults = %q/%q", cfg.Output.Dir, cfg.Log.Level)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
audio:
  sample_rate: 16000
  mono: true
speech:
  voice: female-soft
  emotion: sad
  speed: 1.5
  pitch: -2
output:
  dir: /tmp/out
log:
  level: debug
  file: /var/log/audiostudio.log
  max_size: 10
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Audio.SampleRate != 16000 || !cfg.Audio.Mono {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.Speech.Voice != "female-soft" || cfg.Speech.Emotion != "sad" {
		t.Errorf("speech voice/emotion = %q/%q", cfg.Speech.Voice, cfg.Speech.Emotion)
	}
	if cfg.Speech.Speed != 1.5 || cfg.Speech.Pitch != -2 {
		t.Errorf("speech speed/pitch = %g/%g", cfg.Speech.Speed, cfg.Speech.Pitch)
	}
	if cfg.Speech.SampleRate != 44100 {
		t.Errorf("speech sample rate = %d, want default 44100", cfg.Speech.SampleRate)
	}
	if cfg.Output.Dir != "/tmp/out" {
		t.Errorf("output dir = %q", cfg.Output.Dir)
	}
	if cfg.Log.Level != "debug" || cfg.Log.MaxSize != 10 {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("AUDIOSTUDIO_TEST_OUT", "/srv/renders")
	t.Setenv("AUDIOSTUDIO_TEST_VOICE", "male-deep")

	cfg, err := Parse([]byte("output:\n  dir: ${AUDIOSTUDIO_TEST_OUT}\nspeech:\n  voice: ${AUDIOSTUDIO_TEST_VOICE}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Output.Dir != "/srv/renders" {
		t.Errorf("output dir = %q, want /srv/renders", cfg.Output.Dir)
	}
	if cfg.Speech.Voice != "male-deep" {
		t.Errorf("voice = %q, want male-deep", cfg.Speech.Voice)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		wantSent bool
	}{
		{"bad yaml", "audio: [unclosed", false},
		{"negative audio rate", "audio:\n  sample_rate: -1\n", true},
		{"negative speech rate", "speech:\n  sample_rate: -8000\n", true},
		{"speed too high", "speech:\n  speed: 2.5\n", true},
		{"speed too low", "speech:\n  speed: 0.1\n", true},
		{"negative speed", "speech:\n  speed: -1\n", true},
		{"pitch too low", "speech:\n  pitch: -11\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.wantSent {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err = %v)", got, tt.wantSent, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audiostudio.yaml")
	if err := os.WriteFile(path, []byte("audio:\n  sample_rate: 8000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Audio.SampleRate != 8000 {
		t.Errorf("audio sample rate = %d, want 8000", cfg.Audio.SampleRate)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Speech.SampleRate != 44100 {
		t.Errorf("Load(\"\") did not apply defaults: %+v", cfg.Speech)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
