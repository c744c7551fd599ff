package cmd

import (
	"fmt"
	"os"

	"github.com/npillmayer/linalg/cmd/arith"
	"github.com/npillmayer/linalg/cmd/gen"
	"github.com/npillmayer/linalg/cmd/scalar"

	"github.com/spf13/cobra"
)

// CreateRootCmd creates the root command with all sub-commands attached.
func CreateRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vec",
		Short: "vec computes with immutable real vectors",
		Long:  `vec performs arithmetic on vectors of real numbers, given as comma separated lists of components.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(arith.CreateAddCmd())
	root.AddCommand(arith.CreateSubCmd())
	root.AddCommand(arith.CreateDotCmd())
	root.AddCommand(arith.CreateSumCmd())
	root.AddCommand(scalar.CreateNegCmd())
	root.AddCommand(scalar.CreateScaleCmd())
	root.AddCommand(scalar.CreateDivCmd())
	root.AddCommand(scalar.CreateMagCmd())
	root.AddCommand(scalar.CreateAtCmd())
	root.AddCommand(gen.CreateUniformCmd())
	root.AddCommand(gen.CreateRandomCmd())
	return root
}

// Execute runs the root command with the arguments of the process.
// This is called by main.main().
func Execute() {
	root := CreateRootCmd()
	if err := root.Execute(); err != nil {
		tracer().Errorf("vec: %v", err)
		fmt.Fprintln(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}
