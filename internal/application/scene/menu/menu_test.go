package menu

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/scene/scenetest"
	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/infrastructure/config"
	"github.com/younwookim/pollo/internal/infrastructure/prefs"
)

type stub struct{ scene.Scene }

func newMenu() (*Menu, *scenetest.Env, *int) {
	env := scenetest.NewEnv()
	started := 0
	env.Playing = func() (scene.Scene, error) {
		started++
		return stub{}, nil
	}
	return New(env.Env), env, &started
}

func TestMenu_Start(t *testing.T) {
	tests := []struct {
		name  string
		input func(in *scenetest.Input)
		start bool
	}{
		{"idle", func(in *scenetest.Input) {}, false},
		{"enter", func(in *scenetest.Input) { in.Press(ebiten.KeyEnter) }, true},
		{"space", func(in *scenetest.Input) { in.Press(ebiten.KeySpace) }, true},
		{"tap", func(in *scenetest.Input) { in.Tapped = true }, true},
		{"held enter", func(in *scenetest.Input) { in.Held[ebiten.KeyEnter] = true }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, env, started := newMenu()
			tt.input(env.Input)

			next, err := m.Update(0)
			require.NoError(t, err)
			assert.Equal(t, tt.start, next != nil)
			assert.Equal(t, tt.start, *started == 1)
		})
	}
}

func TestMenu_IntroMusic(t *testing.T) {
	m, env, _ := newMenu()
	assert.Equal(t, state.StateMenu, m.State())

	m.OnEnter()
	m.OnEnter()
	assert.Equal(t, 1, env.Sound.Count(config.SoundIntroMusic), "the loop is not restarted while playing")

	m.OnExit()
	assert.False(t, env.Sound.IsPlaying(config.SoundIntroMusic))
}

func TestMenu_ToggleMute(t *testing.T) {
	m, env, _ := newMenu()
	m.OnEnter()

	env.Input.Press(ebiten.KeyM)
	_, err := m.Update(0)
	require.NoError(t, err)
	assert.True(t, env.Sound.Muted())
	assert.False(t, env.Sound.IsPlaying(config.SoundIntroMusic))

	saved, err := env.Prefs.Load()
	require.NoError(t, err)
	assert.Equal(t, prefs.Settings{Muted: true}, saved)

	m.Draw(nil)
	assert.Contains(t, env.Surface.Texts, "M: sound on")

	env.Input.Frame()
	env.Input.Press(ebiten.KeyM)
	_, err = m.Update(0)
	require.NoError(t, err)
	assert.False(t, env.Sound.Muted())
	assert.True(t, env.Sound.IsPlaying(config.SoundIntroMusic), "unmuting resumes the music")
}

func TestMenu_Draw(t *testing.T) {
	m, env, _ := newMenu()
	m.Draw(nil)

	assert.Equal(t, []string{env.Config.Entities.EndScreens.Start}, env.Surface.Images)
	assert.Equal(t, []string{"Press ENTER to start", "M: sound off"}, env.Surface.Texts)
}
