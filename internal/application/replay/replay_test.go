package replay

import (
	"math/rand"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

const planYAML = `
seed: 42
level: level1
duration: 30s
steps:
  - at: 0s
    hold: [right]
  - at: 1.5s
    hold: [right, jump]
  - at: 2s
    hold: []
`

func TestLoadPlanFS(t *testing.T) {
	fsys := fstest.MapFS{"plan.yaml": {Data: []byte(planYAML)}}

	plan, err := LoadPlanFS(fsys, "plan.yaml")
	require.NoError(t, err)
	assert.Equal(t, int64(42), plan.Seed)
	assert.Equal(t, "level1", plan.Level)
	assert.Equal(t, 30*time.Second, plan.Duration)
	require.Len(t, plan.Steps, 3)
	assert.Equal(t, 1500*time.Millisecond, plan.Steps[1].At)
	assert.Equal(t, []string{"right", "jump"}, plan.Steps[1].Hold)
}

func TestLoadPlanFS_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"missing", "", "failed to read plan"},
		{"bad yaml", "steps: [", "failed to decode plan"},
		{"unknown intent", "steps:\n  - at: 0s\n    hold: [dash]\n", `unknown intent "dash"`},
		{"out of order", "steps:\n  - at: 2s\n  - at: 1s\n", "step 1 at 1s comes before 2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			if tt.data != "" {
				fsys["plan.yaml"] = &fstest.MapFile{Data: []byte(tt.data)}
			}
			_, err := LoadPlanFS(fsys, "plan.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReplayer_Apply(t *testing.T) {
	plan := Plan{Steps: []Step{
		{At: 0, Hold: []string{"right"}},
		{At: time.Second, Hold: []string{"left", "throw"}},
		{At: time.Second, Hold: []string{"jump"}},
		{At: 2 * time.Second},
	}}
	r := NewReplayer(plan)
	var intents system.Intents

	assert.True(t, r.Apply(0, &intents))
	assert.True(t, intents.Pressed(system.IntentRight))

	assert.False(t, r.Apply(500*time.Millisecond, &intents))
	assert.True(t, intents.Pressed(system.IntentRight), "intents hold between steps")

	assert.True(t, r.Apply(time.Second, &intents))
	assert.True(t, intents.Pressed(system.IntentJump), "the last due step wins")
	assert.False(t, intents.Pressed(system.IntentLeft))
	assert.False(t, intents.Pressed(system.IntentRight))
	assert.False(t, r.Done())

	assert.True(t, r.Apply(3*time.Second, &intents))
	assert.False(t, intents.Pressed(system.IntentJump))
	assert.True(t, r.Done())

	r.Reset()
	assert.False(t, r.Done())
}

func newWorld(t *testing.T) *world.World {
	t.Helper()
	cfg := config.MustLoadDefaults()
	content, err := config.NewDefaultLoader().LoadLevel("level1")
	require.NoError(t, err)
	ctx := world.NewContext(cfg, content, nil, nil, rand.New(rand.NewSource(7)))
	w, err := world.New(ctx, content, &system.Intents{})
	require.NoError(t, err)
	return w
}

func TestSimulate_RunsForDuration(t *testing.T) {
	w := newWorld(t)

	res := Simulate(w, Plan{Duration: time.Second}, time.Second/60)
	assert.False(t, res.Ended)
	assert.GreaterOrEqual(t, res.Elapsed, time.Second)
	assert.Less(t, res.Elapsed, time.Second+time.Second/30)
	assert.Equal(t, 100.0, res.Health)
	assert.True(t, w.Stopped())
}

func TestSimulate_StopsAtTheEnd(t *testing.T) {
	w := newWorld(t)
	entities := w.Context().Entities
	ecs.Health.Get(entities.Entry(entities.Character())).Energy = 0

	ended := 0
	w.OnEnd = func(world.Outcome, string) { ended++ }

	res := Simulate(w, Plan{Duration: 10 * time.Second}, 0)
	assert.True(t, res.Ended)
	assert.Equal(t, world.OutcomeLost, res.Outcome)
	assert.Less(t, res.Elapsed, 2*time.Second)
	assert.Equal(t, 1, ended, "an existing end callback still fires")
}
