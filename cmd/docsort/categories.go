package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docsort/docsort/internal/cli"
	"github.com/docsort/docsort/internal/config"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the configured categories",
		RunE:  runCategories,
	}

	cmd.Flags().String("categories", "", "Category definition file (default: categories.yaml in the watched dir)")
	_ = viper.BindPFlag("categories.file", cmd.Flags().Lookup("categories"))

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	categories, err := config.LoadCategories(categoriesPath())
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatTitle(fmt.Sprintf("Categories (%d)", categories.Len())))
	for _, c := range categories.Categories() {
		cmd.Printf("  %s %s\n", c.Name, cli.FormatSubtle(c.Description))
	}
	cmd.Println(cli.FormatSubtle(fmt.Sprintf("Fallback: %s", viper.GetString("classification.fallback"))))

	return nil
}
