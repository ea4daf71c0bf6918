package haversack_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2020/haversack"
)

// ExampleGraph_TotalInside answers both questions for a small rule set.
//
//	shiny gold ──2──▶ dark red ──3──▶ dark orange
//	     │                              ▲
//	     └───────────1──────────────────┘
//	bright white ──1──▶ shiny gold
//
// One shiny gold bag holds 2 dark red and 2×3+1 = 7 dark orange bags.
func ExampleGraph_TotalInside() {
	g, err := haversack.Parse(`shiny gold bags contain 2 dark red bags, 1 dark orange bag.
dark red bags contain 3 dark orange bags.
dark orange bags contain no other bags.
bright white bags contain 1 shiny gold bag.`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = g.FinalizeAll(); err != nil {
		fmt.Println("error:", err)
		return
	}

	outer, _ := g.ContainersOf("shiny gold")
	inside, _ := g.TotalInside("shiny gold")
	orange, _ := g.DeepCount("shiny gold", "dark orange")
	fmt.Println("containers:", outer)
	fmt.Println("inside:", inside)
	fmt.Println("dark orange:", orange)

	// Output:
	// containers: 1
	// inside: 9
	// dark orange: 7
}
