package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
		want Bounds
	}{
		{
			name: "defaults",
			cfg:  DefaultConfig(),
			want: Bounds{Min: 0, Max: 100},
		},
		{
			name: "reversed bounds are reordered",
			cfg:  Config{Min: 100, Max: -20},
			want: Bounds{Min: -20, Max: 100},
		},
		{
			name: "value list overrides bounds",
			cfg:  Config{Min: 0, Max: 100, ValueList: []float64{35, 10, 50, 20}},
			want: Bounds{Min: 10, Max: 50, Stops: []float64{10, 20, 35, 50}},
		},
		{
			name: "value list is sanitised",
			cfg:  Config{ValueList: []float64{50, 10, math.NaN(), 20, 20, math.Inf(1)}},
			want: Bounds{Min: 10, Max: 50, Stops: []float64{10, 20, 50}},
		},
		{
			name: "single element list is ignored",
			cfg:  Config{Min: 0, Max: 10, ValueList: []float64{4}},
			want: Bounds{Min: 0, Max: 10},
		},
		{
			name: "list collapsing to one stop is ignored",
			cfg:  Config{Min: 0, Max: 10, ValueList: []float64{4, 4, math.NaN()}},
			want: Bounds{Min: 0, Max: 10},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ResolveBounds(tc.cfg))
		})
	}
}

func TestNormalizeSnapsToValueList(t *testing.T) {
	t.Parallel()

	b := ResolveBounds(Config{ValueList: []float64{10, 20, 35, 50}})

	cases := map[float64]float64{
		34: 35,
		22: 20,
		5:  10,
		60: 50,
		35: 35,
		27: 20,
		28: 35,
	}
	for in, want := range cases {
		assert.Equal(t, want, b.Normalize(in), "normalize(%v)", in)
	}
}

func TestNormalizeTieGoesToLowerStop(t *testing.T) {
	t.Parallel()

	b := ResolveBounds(Config{ValueList: []float64{10, 20}})
	require.Equal(t, 10.0, b.Normalize(15))
}

func TestNormalizeWithoutListOnlyClamps(t *testing.T) {
	t.Parallel()

	b := ResolveBounds(Config{Min: 0, Max: 10, ValueList: []float64{3}})
	assert.Equal(t, 3.3, b.Normalize(3.3))
	assert.Equal(t, 0.0, b.Normalize(-1))
	assert.Equal(t, 10.0, b.Normalize(11))
	assert.Equal(t, 10.0, b.Normalize(math.Inf(1)))
	assert.Equal(t, 0.0, b.Normalize(math.NaN()))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	configs := []Config{
		DefaultConfig(),
		{Min: 50, Max: -50},
		{Min: 3, Max: 3},
		{ValueList: []float64{10, 20, 35, 50}},
		{ValueList: []float64{-1.5, 0.25, 0.3, 7}},
	}

	for _, cfg := range configs {
		b := ResolveBounds(cfg)
		for v := -120.0; v <= 120; v += 0.37 {
			once := b.Normalize(v)
			require.Equal(t, once, b.Normalize(once), "cfg %+v value %v", cfg, v)
			require.GreaterOrEqual(t, once, b.Min)
			require.LessOrEqual(t, once, b.Max)
		}
	}
}

func TestNormalizeRangeOrdersEndpoints(t *testing.T) {
	t.Parallel()

	b := ResolveBounds(DefaultConfig())
	require.Equal(t, Range{Low: 20, High: 80}, b.NormalizeRange(Range{Low: 80, High: 20}))
	require.Equal(t, Range{Low: 0, High: 100}, b.NormalizeRange(Range{Low: 140, High: -5}))

	snapped := ResolveBounds(Config{ValueList: []float64{10, 20, 35, 50}})
	require.Equal(t, Range{Low: 20, High: 35}, snapped.NormalizeRange(Range{Low: 30, High: 21}))
}

func TestThumbPx(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 24.0, DefaultConfig().ThumbPx())
	assert.Equal(t, 3.0, Config{ThumbSize: 3, UnitPx: 1}.ThumbPx())
	assert.Equal(t, 8.0, Config{ThumbSize: 2}.ThumbPx())
	assert.Equal(t, 0.0, Config{ThumbSize: -2, UnitPx: 1}.ThumbPx())
}
