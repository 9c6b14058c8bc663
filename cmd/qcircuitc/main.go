// Command qcircuitc compiles the circuits built into this binary and
// either runs them to a final operator/measurement distribution or
// emits their instruction stream in the on-disk wire format.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
