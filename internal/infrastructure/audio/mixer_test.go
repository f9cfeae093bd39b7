package audio

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

func TestDecode_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr string
	}{
		{"unsupported extension", "jump.flac", "unsupported audio format: .flac"},
		{"no extension", "jump", "unsupported audio format"},
		{"corrupt mp3", "jump.mp3", "failed to decode jump.mp3"},
		{"corrupt ogg", "jump.OGG", "failed to decode jump.OGG"},
		{"corrupt wav", "jump.wav", "failed to decode jump.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(44100, tt.file, []byte("not audio"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMixer_MissingSoundIsReportedOnce(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.AudioConfig{
		SampleRate: 44100,
		Sounds: map[config.SoundID]config.SoundConfig{
			config.SoundJump: {Path: "audio/jump.mp3", Volume: 0.05},
		},
	}
	m := NewMixer(nil, fstest.MapFS{}, cfg, log.New(&out))

	m.Play(config.SoundJump, 0.05)
	m.Play(config.SoundJump, 0.05)
	m.Play(config.SoundWinner, 0.1)

	assert.False(t, m.IsPlaying(config.SoundJump))
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("sound unavailable")))
}

func TestMixer_Mute(t *testing.T) {
	m := NewMixer(nil, fstest.MapFS{}, &config.AudioConfig{}, log.New(&bytes.Buffer{}))
	assert.False(t, m.Muted())

	m.SetMuted(true)
	assert.True(t, m.Muted())
	m.Play(config.SoundJump, 1)
	m.StopAll()
	assert.False(t, m.IsPlaying(config.SoundJump))

	m.SetMuted(false)
	assert.False(t, m.Muted())
}
