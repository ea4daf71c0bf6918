package haversack_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2020/haversack"
)

// layeredRules builds depth layers of width bags, each bag holding two bags
// of the next layer.
func layeredRules(depth, width int) string {
	var b strings.Builder
	for d := 0; d < depth; d++ {
		for w := 0; w < width; w++ {
			if d == depth-1 {
				fmt.Fprintf(&b, "l%d w%d bags contain no other bags.\n", d, w)
				continue
			}
			fmt.Fprintf(&b, "l%d w%d bags contain 1 l%d w%d bag, 2 l%d w%d bags.\n",
				d, w, d+1, w, d+1, (w+1)%width)
		}
	}

	return b.String()
}

// BenchmarkFinalizeAll measures parsing plus finalization of 600 bags.
func BenchmarkFinalizeAll(b *testing.B) {
	rules := layeredRules(20, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := haversack.Parse(rules)
		if err != nil {
			b.Fatal(err)
		}
		if err = g.FinalizeAll(); err != nil {
			b.Fatal(err)
		}
	}
}
