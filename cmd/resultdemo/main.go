// Command resultdemo runs integer division over its arguments with the
// result library and reports every outcome.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
