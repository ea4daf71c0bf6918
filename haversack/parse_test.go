package haversack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2020/haversack"
)

// TestParseRule covers both rule shapes and singular/plural clauses.
func TestParseRule(t *testing.T) {
	cases := []struct {
		name string
		line string
		want haversack.Rule
	}{
		{
			"TwoContents",
			"light red bags contain 1 bright white bag, 2 muted yellow bags.",
			haversack.Rule{Container: "light red", Contents: []haversack.Content{
				{Count: 1, Name: "bright white"},
				{Count: 2, Name: "muted yellow"},
			}},
		},
		{
			"SingleContent",
			"bright white bags contain 1 shiny gold bag.\n",
			haversack.Rule{Container: "bright white", Contents: []haversack.Content{
				{Count: 1, Name: "shiny gold"},
			}},
		},
		{
			"Empty",
			"faded blue bags contain no other bags.",
			haversack.Rule{Container: "faded blue"},
		},
		{
			"MultiDigit",
			"posh crimson bags contain 12 dim tan bags.",
			haversack.Rule{Container: "posh crimson", Contents: []haversack.Content{
				{Count: 12, Name: "dim tan"},
			}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := haversack.ParseRule(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParseRule_Malformed rejects lines outside the grammar.
func TestParseRule_Malformed(t *testing.T) {
	for _, line := range []string{
		"",
		"light red bags hold 1 bright white bag.",
		" bags contain 1 bright white bag.",
		"light red bags contain one bright white bag.",
		"light red bags contain 0 bright white bags.",
		"light red bags contain -2 bright white bags.",
		"light red bags contain 1 white bag.",
		"light red bags contain 1 bright white boxes.",
		"light red bags contain 1 bright white bag,.",
	} {
		_, err := haversack.ParseRule(line)
		assert.ErrorIs(t, err, haversack.ErrMalformedRule, "line %q", line)
	}
}
