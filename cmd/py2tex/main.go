// py2tex saves computed values to a LaTeX file of \newcommand definitions.
//
//	py2tex sci totalMass 5.23e10 --sig-figs 3
//	py2tex pct fracHot 0.573
//	py2tex list
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
