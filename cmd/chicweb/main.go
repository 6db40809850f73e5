// Command chicweb serves the Chic language website content and provides
// offline tools for its feeds and translations.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
