package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/config"
	"github.com/songeyume/bibli/internal/util"
)

var appVersion = "dev"

// SetVersion records the build version injected from main.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

var (
	conf *config.Config

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagData          string
)

var rootCmd = &cobra.Command{
	Use:   "bibli",
	Short: "Browse a personal book collection from the terminal",
	Long: `bibli is a reading-journal browser: filter, sort and page through
your book collection, pull up quotes and reading stats, track series
progress, and let the wheel pick your next read.

Run 'bibli' with no arguments to open the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: default to the browse screen
		return newBrowseCmd().RunE(cmd, args)
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bibli/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "Dataset path (overrides config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		if flagConfig != "" {
			os.Setenv("BIBLI_CONFIG", flagConfig)
		}

		var err error
		conf, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if conf.Display.NoColor {
			util.InitColor(true)
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newBrowseCmd(),
		newInfoCmd(),
		newQuotesCmd(),
		newStatsCmd(),
		newPickCmd(),
		newSeriesCmd(),
		newTagsCmd(),
		newPublishersCmd(),
		newExportCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// loadRepo opens the dataset named by --data or the config.
func loadRepo() (*book.Repository, error) {
	path := flagData
	if path == "" {
		path = config.ExpandHome(conf.Library.Dataset)
	}
	repo, err := book.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading library %s: %w", path, err)
	}
	return repo, nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
