package cmd

import (
	"fmt"
	"io/ioutil"

	"golox/internal"

	"github.com/spf13/cobra"
)

// mode is one way of running a source file through the interpreter
type mode func(*internal.Interpreter, string) int

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print the tokens of a file",
	Long: `Print one line per token: kind, lexeme and literal.

Lexical errors go to stderr and the tokens found so far are still printed.`,
	Args: cobra.ExactArgs(1),
	RunE: fileCommand((*internal.Interpreter).Tokenize),
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the tree of an expression",
	Args:  cobra.ExactArgs(1),
	RunE:  fileCommand((*internal.Interpreter).Parse),
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file>",
	Short: "Print the value of an expression",
	Args:  cobra.ExactArgs(1),
	RunE:  fileCommand((*internal.Interpreter).Evaluate),
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a program",
	Args:  cobra.ExactArgs(1),
	RunE:  fileCommand((*internal.Interpreter).Run),
}

func init() {
	rootCmd.AddCommand(tokenizeCmd, parseCmd, evaluateCmd, runCmd)
}

func fileCommand(run mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		source, err := ioutil.ReadFile(args[0])
		if err != nil {
			status = internal.ExitIOErr
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		status = run(internal.NewInterpreter(stdPrinter{}, logger), string(source))
		return nil
	}
}
