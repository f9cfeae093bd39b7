// Package audio plays the game's sounds through an ebiten audio context.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Mixer owns one player per sound id. Sound effects are decoded once and
// cached; looping sounds restart from the cached bytes through an infinite loop.
// A sound whose file is missing or undecodable is reported once and then stays silent.
type Mixer struct {
	context *audio.Context
	fsys    fs.FS
	cfg     *config.AudioConfig
	log     *log.Logger

	cache   map[string][]byte
	broken  map[config.SoundID]bool
	players map[config.SoundID]*audio.Player
	muted   bool
}

// NewMixer creates a mixer reading sound files from fsys
func NewMixer(context *audio.Context, fsys fs.FS, cfg *config.AudioConfig, logger *log.Logger) *Mixer {
	return &Mixer{
		context: context,
		fsys:    fsys,
		cfg:     cfg,
		log:     logger,
		cache:   make(map[string][]byte),
		broken:  make(map[config.SoundID]bool),
		players: make(map[config.SoundID]*audio.Player),
	}
}

// Preload decodes every registered sound so the first play does not stall
func (m *Mixer) Preload() {
	for id := range m.cfg.Sounds {
		_, _ = m.decoded(id)
	}
}

// Play starts a sound at the given volume. A looping sound that is already
// playing keeps playing. Nothing plays while muted.
func (m *Mixer) Play(id config.SoundID, volume float64) {
	if m.muted {
		return
	}
	sound, ok := m.cfg.Sounds[id]
	if !ok {
		return
	}
	if sound.Loop && m.IsPlaying(id) {
		return
	}
	data, err := m.decoded(id)
	if err != nil {
		return
	}

	var src io.Reader = bytes.NewReader(data)
	if sound.Loop {
		src = audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	}
	player, err := m.context.NewPlayer(src)
	if err != nil {
		m.log.Warn("audio player", "sound", id, "error", err)
		return
	}
	m.release(id)
	player.SetVolume(volume)
	player.Play()
	m.players[id] = player
}

// Stop halts a sound if it is playing
func (m *Mixer) Stop(id config.SoundID) {
	m.release(id)
}

// IsPlaying reports whether the latest player of a sound is still running
func (m *Mixer) IsPlaying(id config.SoundID) bool {
	p, ok := m.players[id]
	return ok && p.IsPlaying()
}

// StopAll halts every sound
func (m *Mixer) StopAll() {
	for id := range m.players {
		m.release(id)
	}
}

// SetMuted mutes or unmutes the mixer. Muting stops everything that plays.
func (m *Mixer) SetMuted(muted bool) {
	m.muted = muted
	if muted {
		m.StopAll()
	}
}

// Muted reports whether the mixer is muted
func (m *Mixer) Muted() bool {
	return m.muted
}

func (m *Mixer) release(id config.SoundID) {
	p, ok := m.players[id]
	if !ok {
		return
	}
	p.Pause()
	_ = p.Close()
	delete(m.players, id)
}

func (m *Mixer) decoded(id config.SoundID) ([]byte, error) {
	if m.broken[id] {
		return nil, fmt.Errorf("sound %s unavailable", id)
	}
	p := m.cfg.Sounds[id].Path
	if data, ok := m.cache[p]; ok {
		return data, nil
	}
	data, err := m.load(p)
	if err != nil {
		m.broken[id] = true
		m.log.Warn("sound unavailable", "sound", id, "path", p, "error", err)
		return nil, err
	}
	m.cache[p] = data
	return data, nil
}

func (m *Mixer) load(p string) ([]byte, error) {
	raw, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	return Decode(m.cfg.SampleRate, p, raw)
}

// Decode turns an encoded mp3, ogg or wav file into raw PCM at the given sample rate.
// The format follows the file extension.
func Decode(sampleRate int, name string, data []byte) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}
