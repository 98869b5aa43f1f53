// Command heliport identifies the language of each line of text read from
// standard input (or a file), against a binary model produced by
// "heliport binarize".
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		printFatal(err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "heliport",
		Short:         "Identify the written language of text, line by line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("model-dir", "m", "", "model directory (default: LanguageModels beside the executable)")
	root.PersistentFlags().IntP("threads", "j", 0, "worker goroutines (0=synchronous, 1=single worker, >1=pool)")

	root.AddCommand(newIdentifyCmd())
	root.AddCommand(newBinarizeCmd())
	root.AddCommand(newCreateModelCmd())
	return root
}

// exitCode distinguishes user/config errors (1) from internal errors (2),
// matching the CLI's documented exit code contract.
type exitCode struct {
	error
	code int
}

func userError(format string, args ...any) error {
	return exitCode{error: fmt.Errorf(format, args...), code: 1}
}

func internalError(err error) error {
	return exitCode{error: err, code: 2}
}

func exitCodeFor(err error) int {
	var ec exitCode
	if e, ok := err.(exitCode); ok {
		ec = e
		return ec.code
	}
	return 2
}

func printFatal(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("heliport: %v", err))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.YellowString("heliport: warning: "+format, args...))
}
