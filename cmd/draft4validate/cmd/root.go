package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	schema "github.com/kschaper/draft4schema"
)

var offline bool

// rootCmd is the base cobra command: flags are registered on the
// command's own pflag.FlagSet rather than via a bare flag.Parse.
var rootCmd = &cobra.Command{
	Use:   "draft4validate",
	Short: "Validate JSON instances against Draft-4 JSON Schemas",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&offline, "offline", false, "disallow fetching remote $ref documents")
	rootCmd.AddCommand(validateCmd, resolveCmd, walkCmd)
}

// loadDocument reads path and parses it as JSON or YAML by extension.
func loadDocument(path string) (*schema.JSONValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return schema.ParseYAML(data)
	default:
		return schema.Parse(data)
	}
}

func resolveOptions() schema.ResolveOptions {
	return schema.ResolveOptions{Download: !offline}
}
