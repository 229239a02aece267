// Command draft4validate is a small CLI around the draft4schema library:
// validate an instance against a schema, resolve a schema's $refs for
// inspection, or print a schema's id/$ref maps.
package main

import (
	"log"

	"github.com/kschaper/draft4schema/cmd/draft4validate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("draft4validate: %v", err)
	}
}
