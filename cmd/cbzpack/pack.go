package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/config"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/history"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/logging"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/output"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/pipeline"
)

// runPack is the root command handler: package each directory argument.
func runPack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := initLogging(cfg); err != nil {
		return err
	}

	formatter, err := output.Get(viper.GetString("output"))
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, output.Available())
	}

	opts := buildPipelineOptions(cfg)

	if journal := openJournal(cfg); journal != nil && !viper.GetBool("dry_run") {
		opts.History = journal
	}

	// Cancel the run between directories on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		printVerbose("Interrupt received, finishing current directory")
		cancel()
	}()

	start := time.Now()
	results := pipeline.Run(ctx, args, opts)
	report := pipeline.Report(results, time.Since(start))

	if !getQuiet() || report.Stats.Failed > 0 {
		var buf bytes.Buffer
		if err := formatter.Format(&buf, report); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Print(buf.String())
	}

	if report.Stats.Failed > 0 {
		return fmt.Errorf("%d of %d directories failed", report.Stats.Failed, report.Stats.Dirs)
	}
	return nil
}

// buildPipelineOptions merges config file values and flags into the
// pipeline options. Viper already gives flags precedence.
func buildPipelineOptions(cfg *config.Config) pipeline.Options {
	exclude := viper.GetStringSlice("exclude")
	if len(exclude) == 0 {
		exclude = cfg.Exclude
	}

	return pipeline.Options{
		NoRename:         viper.GetBool("no_rename"),
		Delete:           viper.GetBool("delete"),
		Verify:           viper.GetBool("verify"),
		Overwrite:        viper.GetBool("overwrite"),
		Recursive:        viper.GetBool("recursive"),
		Strict:           viper.GetBool("strict"),
		DryRun:           viper.GetBool("dry_run"),
		OutputDir:        viper.GetString("output_dir"),
		Exclude:          exclude,
		ConfirmOverwrite: confirmOverwrite,
		OnVerifyProgress: verifyProgress,
	}
}

// initLogging configures the logging system from config and flags.
func initLogging(cfg *config.Config) error {
	level := cfg.Logging.Level
	if getVerbose() {
		level = "debug"
	}

	return logging.Init(logging.Config{
		Level:      level,
		Components: cfg.Logging.Components,
		Quiet:      getQuiet(),
	})
}

// openJournal returns the history journal, or nil when history is
// disabled or unavailable.
func openJournal(cfg *config.Config) *history.Journal {
	if !cfg.History.Enabled {
		return nil
	}

	path := cfg.History.Path
	if path == "" {
		path = config.DefaultHistoryDir()
	}

	journal, err := history.New(path)
	if err != nil {
		printVerbose("History disabled: %v", err)
		return nil
	}
	return journal
}

// verifyProgress reports decode progress on stderr in verbose mode.
func verifyProgress(done, total int) {
	printVerbose("Verified %d/%d images", done, total)
}
