//go:build js && wasm

// Command wasm exposes the solver to JavaScript. Both functions return a
// number on success and an Error object otherwise.
//
//	GOOS=js GOARCH=wasm go build -o amortize.wasm ./example/wasm
package main

import (
	"fmt"
	"syscall/js"

	"github.com/aybabtme/amortize/pkg/amortize"
)

func main() {
	js.Global().Set("solveForPrincipal", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		return call(args, amortize.SolveForPrincipal)
	}))
	js.Global().Set("calcNumberOfPayments", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		return call(args, amortize.NumberOfPayments)
	}))
	select {}
}

func call(args []js.Value, fn func(a, b, c float64, opts ...amortize.Option) (float64, error)) interface{} {
	if len(args) != 3 {
		return jsError(fmt.Errorf("want 3 arguments, got %d", len(args)))
	}
	for i, arg := range args {
		if arg.Type() != js.TypeNumber {
			return jsError(fmt.Errorf("argument %d is a %v, want a number", i, arg.Type()))
		}
	}
	v, err := fn(args[0].Float(), args[1].Float(), args[2].Float())
	if err != nil {
		return jsError(err)
	}
	return v
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
