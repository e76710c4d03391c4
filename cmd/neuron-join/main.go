// Command neuron-join compiles the relation paths of the models defined
// in the YAML schema into the SQL queries.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
