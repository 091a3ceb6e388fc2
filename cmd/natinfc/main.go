// Command natinfc is a small front end over the natinf package: it parses
// a proposition or expression from the command line, runs one of the
// package's core transforms, and prints the result in the package's own
// textual syntax. The teacher's own CLI (a single flag-parsed command)
// used the stdlib flag package; this tool has three subcommands, so it
// adopts cobra instead, the convention the retrieval pack's other
// constraint-solver tooling uses for multi-subcommand CLIs.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/numcon/natinf"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "natinfc",
		Short:         "Simplify propositions over the extended natural numbers ℕ∞",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimplifyCmd(), newDefinedCmd(), newTraceCmd())
	return root
}

func newSimplifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <prop>",
		Short: "Simplify a proposition to its normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer recoverToError(&err)
			p, perr := natinf.ParseProp(args[0])
			if perr != nil {
				return perr
			}
			fmt.Fprintln(cmd.OutOrStdout(), natinf.Sprint(natinf.Simplify(p)))
			return nil
		},
	}
}

func newDefinedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defined <expr>",
		Short: "Print the (simplified) well-definedness proposition of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer recoverToError(&err)
			e, perr := natinf.ParseExpr(args[0])
			if perr != nil {
				return perr
			}
			fmt.Fprintln(cmd.OutOrStdout(), natinf.Sprint(natinf.Simplify(natinf.Defined(e))))
			return nil
		},
	}
}

func newTraceCmd() *cobra.Command {
	var maxSteps int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "trace <prop>",
		Short: "Print every intermediate form simplification passes through",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer recoverToError(&err)
			p, perr := natinf.ParseProp(args[0])
			if perr != nil {
				return perr
			}

			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			i := 0
			for step := range natinf.SimpSteps(p) {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("natinf: trace: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, natinf.Sprint(step))
				i++
				if maxSteps > 0 && i >= maxSteps {
					break
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many steps (0 = unbounded, limited only by the internal step cap)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort if tracing runs longer than this (checked between, not within, steps; 0 = no timeout)")
	return cmd
}

// recoverToError is the CLI's outermost boundary (§7): an internal
// step-cap panic (simplify.go) is recovered here, turned into a returned
// error carrying the offending Prop's printed form, and never retried.
func recoverToError(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("natinf: internal error: %v", r)
	}
}
