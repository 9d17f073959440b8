package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "cbzpack [flags] DIR...",
		Short: "Package image directories into CBZ comic archives",
		Long: `cbzpack turns directories of images into CBZ comic archives.

Each directory is scanned, its images are put in reading order, optionally
verified and renamed to a sequential scheme, and packaged into <dir>.cbz.
Non-image files are reported and left out of the archive.

Examples:
  cbzpack ./vol1                  # Package one directory into vol1.cbz
  cbzpack ./vol*/                 # Package several directories
  cbzpack --verify -d ./vol1      # Verify pages, delete source on success
  cbzpack -n ./vol1               # Keep original file names
  cbzpack --dry-run ./vol1        # Show what would be packaged
  cbzpack config show             # Show configuration
  cbzpack history                 # View packaging history`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPack,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/cbzpack/config.yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Pack flags (root command only)
	rootCmd.Flags().BoolP("no-rename", "n", false, "keep original file names inside the archive")
	rootCmd.Flags().BoolP("delete", "d", false, "delete the source directory after packaging")
	rootCmd.Flags().Bool("verify", false, "fully decode every image before packaging")
	rootCmd.Flags().Bool("overwrite", false, "replace existing archives without asking")
	rootCmd.Flags().BoolP("recursive", "r", false, "include images from subdirectories")
	rootCmd.Flags().Bool("strict", false, "fail a directory containing any non-image file")
	rootCmd.Flags().Bool("dry-run", false, "plan the archive but write nothing")
	rootCmd.Flags().String("output-dir", "", "write archives to this directory")
	rootCmd.Flags().StringP("output", "o", "pretty", "output format (pretty, plain, json)")
	rootCmd.Flags().StringSliceP("exclude", "e", nil, "exclude patterns (can be specified multiple times)")

	// Bind flags to viper
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_rename", rootCmd.Flags().Lookup("no-rename"))
	_ = viper.BindPFlag("delete", rootCmd.Flags().Lookup("delete"))
	_ = viper.BindPFlag("verify", rootCmd.Flags().Lookup("verify"))
	_ = viper.BindPFlag("overwrite", rootCmd.Flags().Lookup("overwrite"))
	_ = viper.BindPFlag("recursive", rootCmd.Flags().Lookup("recursive"))
	_ = viper.BindPFlag("strict", rootCmd.Flags().Lookup("strict"))
	_ = viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("output_dir", rootCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "cbzpack"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "cbzpack"))
		}
	}

	// Set environment variable prefix and enable auto env binding
	viper.SetEnvPrefix("CBZPACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
