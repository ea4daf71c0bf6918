package haversack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2020/haversack"
)

// TestContainersOf: four colours can eventually hold a shiny gold bag.
func TestContainersOf(t *testing.T) {
	g, err := haversack.Parse(sampleOne)
	require.NoError(t, err)
	require.NoError(t, g.FinalizeAll())

	n, err := g.ContainersOf("shiny gold")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = g.ContainersOf("light red")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = g.ContainersOf("faded blue")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

// TestTotalInside covers both published totals.
func TestTotalInside(t *testing.T) {
	cases := []struct {
		name  string
		rules string
		want  int
	}{
		{"SampleOne", sampleOne, 32},
		{"SampleTwo", sampleTwo, 126},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := haversack.Parse(tc.rules)
			require.NoError(t, err)
			require.NoError(t, g.Finalize("shiny gold"))

			got, err := g.TotalInside("shiny gold")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestCountNested_Agrees: the plain recursion matches the memoised tables
// for every bag.
func TestCountNested_Agrees(t *testing.T) {
	want := map[string]int{
		"light red": 134, "dark orange": 302, "bright white": 33,
		"muted yellow": 49, "shiny gold": 32, "dark olive": 7,
		"vibrant plum": 11, "faded blue": 0, "dotted black": 0,
	}
	for _, rules := range []string{sampleOne, sampleTwo} {
		g, err := haversack.Parse(rules)
		require.NoError(t, err)
		require.NoError(t, g.FinalizeAll())

		for _, name := range g.Names() {
			nested, err := g.CountNested(name)
			require.NoError(t, err)
			total, err := g.TotalInside(name)
			require.NoError(t, err)
			assert.Equal(t, total, nested, name)
			if w, ok := want[name]; ok && rules == sampleOne {
				assert.Equal(t, w, total, name)
			}
		}
	}
}

// TestDeepCount_Contains queries single pairs.
func TestDeepCount_Contains(t *testing.T) {
	g, err := haversack.Parse(sampleOne)
	require.NoError(t, err)
	require.NoError(t, g.Finalize("shiny gold"))

	n, err := g.DeepCount("shiny gold", "dotted black")
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	ok, err := g.Contains("shiny gold", "faded blue")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Contains("shiny gold", "muted yellow")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.DeepCount("light red", "shiny gold")
	assert.ErrorIs(t, err, haversack.ErrNotFinalized)
	_, err = g.DeepCount("shiny gold", "plaid salmon")
	assert.ErrorIs(t, err, haversack.ErrBagNotFound)
}

// TestQueries_BeforeFinalize: both queries refuse to guess.
func TestQueries_BeforeFinalize(t *testing.T) {
	g, err := haversack.Parse(sampleOne)
	require.NoError(t, err)

	_, err = g.ContainersOf("shiny gold")
	assert.ErrorIs(t, err, haversack.ErrNotFinalized)
	_, err = g.TotalInside("shiny gold")
	assert.ErrorIs(t, err, haversack.ErrNotFinalized)
	_, err = g.Deep("shiny gold")
	assert.ErrorIs(t, err, haversack.ErrNotFinalized)

	// finalizing one subtree is not enough for ContainersOf
	require.NoError(t, g.Finalize("shiny gold"))
	_, err = g.ContainersOf("shiny gold")
	assert.ErrorIs(t, err, haversack.ErrNotFinalized)

	// CountNested needs no finalization at all
	n, err := haversack.NewGraph().CountNested("shiny gold")
	assert.ErrorIs(t, err, haversack.ErrBagNotFound)
	assert.Zero(t, n)

	_, err = g.ContainersOf("plaid salmon")
	assert.ErrorIs(t, err, haversack.ErrBagNotFound)
}
