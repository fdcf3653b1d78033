package wmap_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wlang/weight"
	"github.com/katalvlaran/wlang/wmap"
)

func TestMarshalJSON(t *testing.T) {
	m := wmap.Strings().FromWeights([]wmap.Pair[string]{
		{Sequence: "b", Weight: weight.Zero},
		{Sequence: "a", Weight: weight.One},
	})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"sequence":"a","weight":0},{"sequence":"b","weight":"-Inf"}]`, string(data))

	empty, err := json.Marshal(wmap.Strings().Zero())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestDecode_RoundTrip(t *testing.T) {
	src := strs(t, vp{"ab", 0.25}, vp{"c", 0.5}, vp{"z", 0})
	data, err := json.Marshal(src)
	require.NoError(t, err)

	got, err := wmap.Strings().Decode(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Equal(t, src.Len(), got.Len())
	for k, w := range src.Entries() {
		if w.IsZero() {
			assert.True(t, math.IsInf(got.GetLogValue(k), -1))
			continue
		}
		assert.InDelta(t, w.LogValue(), got.GetLogValue(k), eps)
	}
}

func TestDecode_Lists(t *testing.T) {
	in := `[{"sequence":[1,2],"weight":-1},{"sequence":[1,2],"weight":-1},{"sequence":[],"weight":0}]`
	m, err := wmap.Lists[int]().Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	assert.InDelta(t, math.Log(2)-1, m.GetLogValue([]int{1, 2}), eps, "repeats are summed")
	assert.Equal(t, 0.0, m.GetLogValue([]int{}))
}

func TestDecode_Errors(t *testing.T) {
	_, err := wmap.Strings().Decode(strings.NewReader(`{"sequence":"a"}`))
	require.Error(t, err)

	_, err = wmap.Strings().Decode(strings.NewReader(`[{"sequence":"a","weight":"NaN"}]`))
	require.ErrorIs(t, err, weight.ErrBadJSON)
}
