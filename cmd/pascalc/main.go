// Command pascalc translates Pascal-dialect source into C++.
package main

import (
	"os"

	"github.com/pascalc/pascalc/cmd/pascalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
