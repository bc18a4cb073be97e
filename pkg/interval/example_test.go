package interval_test

import (
	"fmt"

	"github.com/mkowalik/wayfind/pkg/interval"
)

func ExampleSolve() {
	best, err := interval.Solve([]int{3, 1, 5, 8})
	if err != nil {
		panic(err)
	}
	fmt.Println(best)
	// Output: 167
}
