package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	schema "github.com/kschaper/draft4schema"
)

var resolveCmd = &cobra.Command{
	Use:           "resolve <schema>",
	Short:         "Resolve a schema's $refs and print the result",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runResolve,
}

func runResolve(_ *cobra.Command, args []string) error {
	schemaDoc, err := loadDocument(args[0])
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	resolved, err := schema.Resolve(schemaDoc, resolveOptions())
	if err != nil {
		return fmt.Errorf("resolve schema: %w", err)
	}

	out, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal resolved schema: %w", err)
	}
	out = append(out, '\n')
	_, err = os.Stdout.Write(out)
	return err
}
