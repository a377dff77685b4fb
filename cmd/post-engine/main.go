// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the post-engine CLI: an
// interactive tool that researches a topic and formats the findings
// into a LinkedIn post.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/post-engine/internal/compose"
	"github.com/pdiddy/post-engine/internal/config"
	"github.com/pdiddy/post-engine/internal/pipeline"
	"github.com/pdiddy/post-engine/internal/research"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the interactive generation sequence. Running the bare
// binary prompts for a topic, format, and length, then produces a post
// and offers a revision loop.
var rootCmd = &cobra.Command{
	Use:   "post-engine",
	Short: "Research a topic and format it into a LinkedIn post",
	Long: `post-engine chains two AI services into a linear pipeline: a
retrieval-augmented research service gathers facts and statistics about
a topic, and a generation service formats them into a LinkedIn post in
one of four structural templates.

Credentials come from PERPLEXITY_API_KEY and ANTHROPIC_API_KEY,
optionally placed in a .env file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	researcher := research.NewClient(cfg.Research)
	composer, err := compose.New(cfg.Compose)
	if err != nil {
		return err
	}

	orch := pipeline.New(researcher, composer, cmd.InOrStdin(), cmd.OutOrStdout())

	fmt.Fprintln(cmd.OutOrStdout(), "\n=== LinkedIn Post Generator with Feedback ===")
	fmt.Fprintln(cmd.OutOrStdout(), "\nThis tool will help you create a LinkedIn post and refine it with your feedback.")

	_, err = orch.RunWithFeedback(context.Background())
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./post-engine.yaml or ~/.config/post-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("post-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "post-engine"))
		}
	}

	viper.SetEnvPrefix("POST_ENGINE")
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(1)
	}
}
