package appcomponents

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/hookdom/storage"
	"github.com/vcrobe/hookdom/testcomponents"
)

func TestCounterReducer(t *testing.T) {
	tests := []struct {
		name   string
		prev   int
		action string
		want   int
	}{
		{"increase", 0, ActionIncrease, 1},
		{"decrease", 0, ActionDecrease, -1},
		{"decrease below zero", -4, ActionDecrease, -5},
		{"unknown action", 7, "reset", 7},
		{"empty action", 7, "", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CounterReducer(CounterState{Count: tt.prev}, Action{Type: tt.action})
			assert.Equal(t, tt.want, got.Count)
		})
	}
}

// TestCounterReducer_NetSum folds random action sequences and checks that
// the count is increases minus decreases.
func TestCounterReducer_NetSum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	kinds := []string{ActionIncrease, ActionDecrease, "noop"}

	for i := 0; i < 50; i++ {
		var s CounterState
		want := 0
		for j := rng.Intn(40); j > 0; j-- {
			a := kinds[rng.Intn(len(kinds))]
			switch a {
			case ActionIncrease:
				want++
			case ActionDecrease:
				want--
			}
			s = CounterReducer(s, Action{Type: a})
		}
		require.Equal(t, want, s.Count)
	}
}

func TestLoadCounter(t *testing.T) {
	kv := storage.NewMemory()

	s, err := LoadCounter(kv)
	require.NoError(t, err)
	assert.Equal(t, CounterState{}, s, "absent key is a zero count")

	require.NoError(t, kv.Set(KeyState, ""))
	s, err = LoadCounter(kv)
	require.NoError(t, err)
	assert.Equal(t, CounterState{}, s, "empty value is a zero count")

	require.NoError(t, kv.Set(KeyState, `{"count":-3}`))
	s, err = LoadCounter(kv)
	require.NoError(t, err)
	assert.Equal(t, -3, s.Count)

	require.NoError(t, kv.Set(KeyState, `{not json`))
	_, err = LoadCounter(kv)
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestCounter_PersistsEveryChange(t *testing.T) {
	h := testcomponents.NewHarness(nil)
	require.NoError(t, h.Render(Counter(h.KV)))

	raw, err := h.KV.Get(KeyState)
	require.NoError(t, err, "the first pass writes the initial state")
	assert.JSONEq(t, `{"count":0}`, raw)

	require.NoError(t, h.Click(IncreaseID))
	require.NoError(t, h.Click(IncreaseID))
	require.NoError(t, h.Click(DecreaseID))

	assert.Equal(t, "1", h.Tree().Children[0].Content)
	raw, err = h.KV.Get(KeyState)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1}`, raw)
}

func TestCounter_CorruptStateFailsFast(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(KeyState, `{not json`))

	h := testcomponents.NewHarness(kv)
	err := h.Render(Counter(kv))
	assert.ErrorIs(t, err, ErrCorruptState)

	raw, err := kv.Get(KeyState)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, raw, "the failed pass does not overwrite storage")
	assert.Equal(t, `<div id="root"></div>`, h.HTML())
}
