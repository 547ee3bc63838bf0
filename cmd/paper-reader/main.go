// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-reader CLI: research paper
// tracking with AI insight extraction. Subcommands cover the full
// lifecycle: init/interests, discover, add, list, search, show,
// update-status, notes, delete, plus the optional full-text index and
// collection export.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-reader/internal/interests"
	"github.com/pdiddy/paper-reader/internal/secrets"
	"github.com/pdiddy/paper-reader/internal/store"
	"github.com/pdiddy/paper-reader/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultDataDir   = ".data/paper-reader"
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "paper-reader/0.1"
	defaultModel     = "claude-sonnet-4-5-20250929"
)

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, else the loaded secret for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paper-reader CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-reader",
	Short: "Track research papers and extract structured insights",
	Long: `paper-reader maintains a personal collection of research papers. It
discovers candidates on arXiv from your research interests, downloads and
reads their PDFs, asks a language model for a structured summary (problem,
method, results, contributions, related work, future directions,
classification), and stores each paper as a JSON record you can list,
search, annotate, and track through to-read/reading/read statuses.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-reader.yaml or ~/.config/paper-reader/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "base directory for collection data (default: "+defaultDataDir+")")
}

func initConfig() {
	// A .env file may carry PAPER_READER_* overrides; absence is fine.
	godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-reader")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-reader"))
		}
	}

	viper.SetEnvPrefix("PAPER_READER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dataDir resolves the base data directory: flag, then config, then default.
func dataDir() string {
	if dir, _ := rootCmd.PersistentFlags().GetString("data-dir"); dir != "" {
		return dir
	}
	if dir := viper.GetString("data_dir"); dir != "" {
		return dir
	}
	return defaultDataDir
}

func openStore() (*store.Store, error) {
	return store.New(types.StoreConfig{DataDir: filepath.Join(dataDir(), "papers")})
}

func openInterests() (*interests.Manager, error) {
	return interests.New(types.InterestsConfig{DataDir: dataDir()})
}

func newHTTPClient() *http.Client {
	timeout := viper.GetDuration("http_timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
