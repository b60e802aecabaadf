package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/dpkit/knapsack"
	"github.com/katalvlaran/dpkit/memo"
)

// ExampleSolve packs three items into a capacity of 5 with a rolling table.
func ExampleSolve() {
	items := []knapsack.Item{
		{Weight: 1, Value: 6},
		{Weight: 2, Value: 10},
		{Weight: 3, Value: 12},
	}
	best, err := knapsack.Solve(memo.BottomUp, items, 5, memo.WithMemoryMode(memo.RollingArray))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(best)
	// Output: 22
}
