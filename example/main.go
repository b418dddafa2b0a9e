// Package main demonstrates usage of the scg-easyerror packages: a small CLI
// that reads an integer from a file, validates it, and reports any failure as
// a full cause chain.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	scgerror "github.com/next-trace/scg-easyerror/error"
	"github.com/next-trace/scg-easyerror/terminator"
)

var rootCmd = &cobra.Command{
	Use:   "easyerror [file]",
	Short: "Read and validate an integer from a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "example.txt"
		if len(args) == 1 {
			name = args[0]
		}

		value, err := fromFile(name)
		if err != nil {
			return scgerror.Context(err, "Unable to get value from file")
		}

		if err := validate(value); err != nil {
			return scgerror.Context(err, "Value is not acceptable")
		}

		fmt.Printf("Value = %d\n", value)

		return nil
	},
}

func fromFile(name string) (int, error) {
	contents, err := os.ReadFile(name)
	if err != nil {
		return 0, scgerror.Context(err, "Could not open file")
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err != nil {
		return 0, scgerror.Context(err, "Could not parse file")
	}

	return value, nil
}

func validate(value int) error {
	if err := scgerror.Ensure(value > 0, "Value must be greater than zero (found %d)", value); err != nil {
		return err
	}

	if value%2 == 1 {
		return scgerror.Bail("Only even numbers can be used")
	}

	return nil
}

func main() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	terminator.Exit(rootCmd.Execute())
}
