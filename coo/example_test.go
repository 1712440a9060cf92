// File: coo/example_test.go
package coo_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/coo"
)

// ExampleMatrix_SumDuplicates shows the assembly pattern: stamp
// overlapping contributions blindly, canonicalize once at the end.
func ExampleMatrix_SumDuplicates() {
	m := coo.New(2, 2)
	m.Append(0, 0, 1)
	m.Append(0, 0, 2) // second element touching the same dof
	m.Append(1, 1, 3)

	fmt.Println("stored before:", m.NNZ())
	m.SumDuplicates()
	fmt.Println("stored after:", m.NNZ())
	fmt.Println("value:", m.Get(0, 0))
	// Output:
	// stored before: 3
	// stored after: 2
	// value: 3
}

// ExampleNewOffsetView assembles one block of a 2×2 block system.
func ExampleNewOffsetView() {
	global := coo.New(4, 4)
	block := coo.NewOffsetView(global, 2, 2, 2, 0) // lower-left block

	block.Append(0, 0, 5)
	block.Append(1, 1, 6)

	fmt.Println(global.Get(2, 0), global.Get(3, 1))
	// Output:
	// 5 6
}
