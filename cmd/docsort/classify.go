package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify FILE",
		Short: "Classify a single file and print its category",
		Long: `Run the classification pipeline once for FILE, without watching a
directory, and print the resolved category.

Examples:
  docsort classify ~/Desktop/Inbox/statement.pdf
  docsort classify --categories ./cat.yaml note.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().String("categories", "", "Category definition file (default: categories.yaml in the watched dir)")
	_ = viper.BindPFlag("categories.file", cmd.Flags().Lookup("categories"))

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	eng, _, err := buildEngine()
	if err != nil {
		return err
	}

	reportResult(cmd, eng.Process(cmd.Context(), path))
	return nil
}
