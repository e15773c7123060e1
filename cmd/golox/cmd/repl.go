package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golox/internal"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Read lines and run them on one interpreter, so bindings persist.

A line without a trailing ';' is read as an expression and its value is
printed. Ctrl+C discards the line, Ctrl+D or :quit leaves.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(cfg.HistoryFile)
		if err != nil {
			logger.WithError(err).Warn("failed to save history")
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	interp := internal.NewInterpreter(replPrinter{}, logger)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return nil
		}
		ln.AppendHistory(line)
		interp.RunLine(line)
	}
}

// replPrinter highlights what the session prints
type replPrinter struct {
	stdPrinter
}

func (r replPrinter) Println(a ...interface{}) (n int, err error) {
	msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	return fmt.Println(colors.Blue(msg))
}
