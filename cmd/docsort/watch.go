package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docsort/docsort/internal/cli"
	"github.com/docsort/docsort/internal/model"
	"github.com/docsort/docsort/internal/watcher"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the inbox folder and classify every new file",
		Long: `Watch the configured inbox folder and classify each newly created file
into one of the configured categories.

Examples:
  docsort watch                         # Watch the configured inbox
  docsort watch --dir ~/Downloads       # Watch a different folder
  docsort watch --categories ./cat.yaml # Use a specific category file`,
		RunE: runWatch,
	}

	cmd.Flags().StringP("dir", "d", "", "Directory to watch (default: watch.dir from config)")
	cmd.Flags().String("categories", "", "Category definition file (default: categories.yaml in the watched dir)")

	_ = viper.BindPFlag("watch.dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("categories.file", cmd.Flags().Lookup("categories"))

	return cmd
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dir := watchDir()
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("watch folder does not exist: %s", dir)
	}

	eng, categories, err := buildEngine()
	if err != nil {
		return err
	}

	w, err := watcher.New(viper.GetDuration("watch.debounce"), slog.Default())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			slog.Error("Failed to close watcher", "error", closeErr)
		}
	}()

	events, err := w.Watch(ctx, dir)
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatTitle("Watching inbox: " + dir))
	cmd.Println(cli.FormatSubtle("Categories: " + strings.Join(categories.Names(), ", ")))
	cmd.Println(cli.FormatSubtle("Press Ctrl+C to stop."))

	// Single worker: events are handled one at a time, in receipt order.
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			reportResult(cmd, eng.Process(ctx, ev.Path))
		}
	}
}

func reportResult(cmd *cobra.Command, result model.Classification) {
	line := fmt.Sprintf("%s → %s", result.File, result.Category)
	if result.Fallback {
		cmd.Println(cli.FormatWarning(line))
		return
	}
	cmd.Println(cli.FormatSuccess(line))
}
