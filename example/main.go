// Example: register parameters with validation rules, populate a handler,
// and run the batch check.
package main

import (
	"fmt"
	"os"

	"paramstore"
)

func main() {
	handler := paramstore.NewHandler[string]()
	ctrl := paramstore.NewController[string]()

	// A parameter that must be present.
	paramstore.Insert[int](ctrl, "required_param").Required()

	// A parameter that must stay within bounds when given.
	paramstore.Insert[int](ctrl, "range_param").Range(0, 100)

	// A parameter that falls back to a default.
	paramstore.Insert[int](ctrl, "default_param").Default(42)

	paramstore.Put(handler, "required_param", 10)
	paramstore.Put(handler, "range_param", 50)

	if err := ctrl.Check(handler); err != nil {
		fmt.Fprintln(os.Stderr, "validation failed:", err)
		os.Exit(1)
	}

	out, err := handler.Format(paramstore.NewPrinter())
	if err != nil {
		fmt.Fprintln(os.Stderr, "render failed:", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
