package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/bibgraph/config"
	"github.com/c360studio/bibgraph/rdf"
)

func validateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and namespace bindings",
		Long: `Validate loads the configuration, compiles it, and resolves every
class reference against the namespace bindings. It exits non-zero on the
first problem found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(*configPath)
			if err != nil {
				return err
			}
			if _, err := rdf.ParseFormat(model.OutputFormat()); err != nil {
				return &config.ConfigError{Section: "settings", Reason: err.Error()}
			}

			fmt.Println("Configuration is valid")
			fmt.Printf("  base URI:        %s\n", model.BaseURI())
			fmt.Printf("  namespaces:      %d\n", len(model.Prefixes()))
			fmt.Printf("  keyword columns: %d\n", len(model.KeywordColumns()))
			fmt.Printf("  output format:   %s\n", model.OutputFormat())
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default bibgraph.yaml to the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ProjectConfigFile
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().SaveToFile(path); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range rdf.Formats() {
				info, _ := rdf.GetFormatInfo(f)
				fmt.Printf("%-4s %-24s %-6s %s\n", info.Name, info.MIMEType, info.Extension, info.Description)
			}
		},
	}
}
