package cmd

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/authcorp/typevault/value"
)

type normalizeOptions struct {
	nullable  bool
	immutable bool
	null      bool
}

func (o normalizeOptions) valueOptions() []value.Option {
	var opts []value.Option
	if o.nullable {
		opts = append(opts, value.Nullable())
	}
	if o.immutable {
		opts = append(opts, value.Immutable())
	}
	return opts
}

func newNormalizeCmd(root *rootOptions) *cobra.Command {
	opts := normalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize <type> [value]",
		Short: "Print the canonical form of a value",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw *string
			switch {
			case len(args) == 2 && opts.null:
				return errtrace.Wrap(fmt.Errorf("--null and a value are mutually exclusive"))
			case len(args) == 2:
				raw = &args[1]
			case !opts.null:
				return errtrace.Wrap(fmt.Errorf("a value or --null is required"))
			}

			out, err := normalize(args[0], raw, opts.valueOptions()...)
			if err != nil {
				root.logger.Debug("normalize failed", slogType(args[0]), slogError(err))
				return errtrace.Wrap(err)
			}
			root.logger.Debug("normalized", slogType(args[0]), slogValue(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.nullable, "nullable", false, "allow a null value")
	cmd.Flags().BoolVar(&opts.immutable, "immutable", false, "construct an immutable value")
	cmd.Flags().BoolVar(&opts.null, "null", false, "construct from null instead of a value")
	return cmd
}
