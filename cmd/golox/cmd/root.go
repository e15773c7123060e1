package cmd

import (
	"fmt"
	"os"
	"strings"

	"golox/internal"
	"golox/internal/config"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg    = config.Default()
	logger = logrus.New()
	colors = color.New()

	// status is the exit status of the last command that ran
	status = internal.ExitOK
)

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "Lox scanner, parser and interpreter",
	Long: `golox scans, parses and runs Lox programs.

Commands:
  tokenize  - print the tokens of a file
  parse     - print the tree of an expression
  evaluate  - print the value of an expression
  run       - run a program
  repl      - start an interactive session`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		if status == internal.ExitOK {
			status = internal.ExitUsage
		}
	}
	return status
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: golox.toml in . or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every pipeline stage")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

func setup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.Discover()
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = logrus.DebugLevel
	}

	colored := cfg.Color && !noColor
	colors.SetOutput(os.Stderr)
	if !colored {
		colors.Disable()
	}

	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: !colored})
	logger.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  path,
	}).Debug("configured")
	return nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, colors.Red("Error: "+err.Error()))
}

// stdPrinter writes program output to stdout and diagnostics to stderr
type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Errorln(a ...interface{}) (n int, err error) {
	msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	return fmt.Fprintln(os.Stderr, colors.Red(msg))
}
