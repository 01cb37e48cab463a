package dyn_test

import (
	"errors"
	"fmt"

	"github.com/ib-77/lazychain/pkg/lazy"
	"github.com/ib-77/lazychain/pkg/lazy/dyn"
)

func ExampleChain_Then() {
	c, err := dyn.MustNew(func() (int, int) { return 1, 2 }).
		Then(func(a, b, c int) int { return a + b + c }, 3)
	if err != nil {
		fmt.Println(err)
		return
	}

	v, _ := c.Value()
	fmt.Println(v)
	// Output: 6
}

func ExampleNew_incompatible() {
	_, err := dyn.New(func(a int) int { return a }, "not an int")
	fmt.Println(errors.Is(err, lazy.ErrIncompatible))
	// Output: true
}
