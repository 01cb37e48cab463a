package chain_test

import (
	"fmt"

	"github.com/ib-77/lazychain/pkg/lazy"
	"github.com/ib-77/lazychain/pkg/lazy/chain"
)

func ExampleThenSpread2x1() {
	root := chain.New(func() lazy.Tuple2[int, int] {
		fmt.Println("returning a tuple")
		return lazy.T2(1, 2)
	})

	sum := chain.ThenSpread2x1(root, func(a, b, c int) int {
		fmt.Println("a + b + c =", a+b+c)
		return a + b + c
	}, 3)

	result, err := sum.Execute()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Result:", result)
	// Output:
	// returning a tuple
	// a + b + c = 6
	// Result: 6
}

func ExampleAfter1() {
	c := chain.After1(chain.Do(func() { fmt.Println("side effect") }), func(z int) int { return z + 1 }, 9)

	v, _ := c.Execute()
	fmt.Println(v)
	// Output:
	// side effect
	// 10
}
