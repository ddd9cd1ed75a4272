package amortize_test

import (
	"fmt"

	"github.com/aybabtme/amortize/pkg/amortize"
)

func ExampleSolveForPrincipal() {
	principal, err := amortize.SolveForPrincipal(0.005, 300, 36)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", principal)
	// Output: 9861.30
}

func ExampleNumberOfPayments() {
	periods, err := amortize.NumberOfPayments(10_000, 0.005, 300)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", periods)

	_, err = amortize.NumberOfPayments(1000, 0.01, 10)
	fmt.Println(err)
	// Output:
	// 36.5560
	// payment 10, first interest charge 10: payment must exceed first interest charge
}
