// Package main contains the docsort CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docsort/docsort/internal/common"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "docsort",
		Short: "Watch a folder and file every new document into the right category",
		Long: `docsort watches an inbox folder for new files, extracts their text,
and asks a local (or remote) language model which of your configured
categories each file belongs to.

Categories live in a small YAML file; anything the model cannot place
confidently lands in the fallback category.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/docsort/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/docsort", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DOCSORT")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No config file is fine, defaults cover everything.
	}

	if err := common.SetupLogger(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("watch.dir", "~/Desktop/Inbox")
	viper.SetDefault("watch.debounce", time.Second)
	viper.SetDefault("categories.file", "")
	viper.SetDefault("classification.fallback", "uncategorized")
	viper.SetDefault("llm.base_url", "http://127.0.0.1:1337/v1")
	viper.SetDefault("llm.api_key", "not-needed")
	viper.SetDefault("llm.model", "foundation")
	viper.SetDefault("llm.max_tokens", 80)
	viper.SetDefault("llm.timeout", 60*time.Second)
	viper.SetDefault("extract.max_pdf_pages", 10)
	viper.SetDefault("extract.max_input_chars", 8000)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docsort version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("docsort %s\n", version)
		},
	}
}
