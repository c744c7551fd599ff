// Package gen implements the commands creating vectors from a size.
package gen

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/linalg/vector"
)

var errNegativeSize = errors.New("size must not be negative")

// CreateUniformCmd creates the uniform command.
func CreateUniformCmd() *cobra.Command {
	var (
		size  int
		value float64
	)
	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "create a uniform vector",
		Long:  `Print a vector of a given size with every component set to the same value.`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("%s: %w: %d", cmd.Name(), errNegativeSize, size)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), vector.Uniform(size, value))
			return err
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "number of components")
	cmd.Flags().Float64Var(&value, "value", 0, "value of every component")
	return cmd
}

// CreateRandomCmd creates the random command.
func CreateRandomCmd() *cobra.Command {
	var (
		size int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "create a random vector",
		Long:  `Print a vector of a given size with pseudo-random components in [0,1). The same seed produces the same vector.`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("%s: %w: %d", cmd.Name(), errNegativeSize, size)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), vector.Random(size, vector.Seeded(seed)))
			return err
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "number of components")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed of the random generator")
	return cmd
}
