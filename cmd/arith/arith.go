// Package arith implements the commands on two or more vectors.
package arith

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/linalg/cmd/flags"
	"github.com/npillmayer/linalg/vector"
)

// CreateAddCmd creates the add command.
func CreateAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "add two vectors",
		Long:  `Add two vectors of the same length component by component.`,

		Args: cobra.ExactArgs(2),
		RunE: binary(func(a, b vector.Vector) (string, error) {
			c, err := a.Add(b)
			return c.String(), err
		}),
	}
}

// CreateSubCmd creates the sub command.
func CreateSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub A B",
		Short: "subtract two vectors",
		Long:  `Subtract vector B from vector A. Both must be of the same length.`,

		Args: cobra.ExactArgs(2),
		RunE: binary(func(a, b vector.Vector) (string, error) {
			c, err := a.Sub(b)
			return c.String(), err
		}),
	}
}

// CreateDotCmd creates the dot command.
func CreateDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot A B",
		Short: "dot product of two vectors",
		Long:  `Print the dot product of two vectors of the same length.`,

		Args: cobra.ExactArgs(2),
		RunE: binary(func(a, b vector.Vector) (string, error) {
			x, err := a.Dot(b)
			return flags.FormatScalar(x), err
		}),
	}
}

// CreateSumCmd creates the sum command.
func CreateSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum A [B…]",
		Short: "add up vectors",
		Long:  `Add up any number of vectors of the same length. Every vector of deviating length is reported.`,

		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := flags.ParseVectors(args)
			if err != nil {
				return err
			}
			sum, err := vector.Sum(vs...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
			return err
		},
	}
}

type binaryOp func(a, b vector.Vector) (string, error)

func binary(op binaryOp) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		vs, err := flags.ParseVectors(args)
		if err != nil {
			return err
		}
		out, err := op(vs[0], vs[1])
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
}
