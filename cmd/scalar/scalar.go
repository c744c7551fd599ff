// Package scalar implements the commands on a single vector, optionally
// combined with a scalar.
package scalar

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/linalg/cmd/flags"
	"github.com/npillmayer/linalg/vector"
)

// runner holds the flags common to commands on a single vector.
type runner struct {
	vec   flags.VectorFlag
	by    float64
	index int
}

func (r *runner) setupVectorFlag(c *cobra.Command) {
	c.Flags().VarP(&r.vec, "vector", "v", "the vector to operate on")
	_ = c.MarkFlagRequired("vector")
}

func (r *runner) do(op func(v vector.Vector) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out, err := op(r.vec.Value())
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
}

// CreateNegCmd creates the neg command.
func CreateNegCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "neg",
		Short: "negate a vector",
		Long:  `Print the vector with every component negated.`,

		Args: cobra.NoArgs,
		RunE: r.do(func(v vector.Vector) (string, error) {
			return v.Neg().String(), nil
		}),
	}
	r.setupVectorFlag(cmd)
	return cmd
}

// CreateScaleCmd creates the scale command.
func CreateScaleCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "multiply a vector by a scalar",
		Long:  `Print the vector with every component multiplied by a scalar.`,

		Args: cobra.NoArgs,
		RunE: r.do(func(v vector.Vector) (string, error) {
			return v.Scale(r.by).String(), nil
		}),
	}
	r.setupVectorFlag(cmd)
	cmd.Flags().Float64Var(&r.by, "by", 1, "the scalar factor")
	return cmd
}

// CreateDivCmd creates the div command.
func CreateDivCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "div",
		Short: "divide a vector by a scalar",
		Long:  `Print the vector with every component divided by a scalar. Division by zero is an error.`,

		Args: cobra.NoArgs,
		RunE: r.do(func(v vector.Vector) (string, error) {
			w, err := v.Div(r.by)
			return w.String(), err
		}),
	}
	r.setupVectorFlag(cmd)
	cmd.Flags().Float64Var(&r.by, "by", 1, "the scalar divisor")
	return cmd
}

// CreateMagCmd creates the mag command.
func CreateMagCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "mag",
		Short: "magnitude of a vector",
		Long:  `Print the Euclidean norm of a vector.`,

		Args: cobra.NoArgs,
		RunE: r.do(func(v vector.Vector) (string, error) {
			return flags.FormatScalar(v.Magnitude()), nil
		}),
	}
	r.setupVectorFlag(cmd)
	return cmd
}

// CreateAtCmd creates the at command.
func CreateAtCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "at",
		Short: "component of a vector",
		Long:  `Print the component of a vector at a zero-based index.`,

		Args: cobra.NoArgs,
		RunE: r.do(func(v vector.Vector) (string, error) {
			x, err := v.At(r.index)
			return flags.FormatScalar(x), err
		}),
	}
	r.setupVectorFlag(cmd)
	cmd.Flags().IntVarP(&r.index, "index", "i", 0, "zero-based index of the component")
	return cmd
}
