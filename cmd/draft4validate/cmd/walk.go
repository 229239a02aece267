package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	schema "github.com/kschaper/draft4schema"
)

var walkCmd = &cobra.Command{
	Use:           "walk <schema>",
	Short:         "Print a schema's id and $ref maps without resolving it",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runWalk,
}

func runWalk(_ *cobra.Command, args []string) error {
	schemaDoc, err := loadDocument(args[0])
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	opts := resolveOptions().WithDefaults()
	ids, refs := schema.Walk(schemaDoc, opts.IDKey, opts.RefKey, opts.ExcludedDataKeys)

	fmt.Fprintln(os.Stdout, "ids:")
	for _, ptr := range sortedKeys(ids) {
		fmt.Fprintf(os.Stdout, "  %s -> %s\n", ptr, ids[ptr])
	}

	fmt.Fprintln(os.Stdout, "refs:")
	for _, ptr := range sortedKeys(refs) {
		fmt.Fprintf(os.Stdout, "  %s -> %s\n", ptr, refs[ptr])
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
