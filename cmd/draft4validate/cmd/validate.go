package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	schema "github.com/kschaper/draft4schema"
)

var validateCmd = &cobra.Command{
	Use:           "validate <schema> <instance>",
	Short:         "Validate an instance document against a Draft-4 schema",
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	schemaDoc, err := loadDocument(args[0])
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	instanceDoc, err := loadDocument(args[1])
	if err != nil {
		return fmt.Errorf("load instance: %w", err)
	}

	resolved, err := schema.Resolve(schemaDoc, resolveOptions())
	if err != nil {
		return fmt.Errorf("resolve schema: %w", err)
	}

	bag := schema.Validate(instanceDoc, resolved)
	if bag.IsValid() {
		fmt.Fprintln(os.Stdout, renderOK("instance is valid"))
		return nil
	}

	renderBag(os.Stdout, bag)
	os.Exit(1)
	return nil
}
