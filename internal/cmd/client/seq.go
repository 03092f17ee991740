package client

import (
	"fmt"

	"github.com/srccircumflex/ulid-tool/pkg/ulid"
	"github.com/spf13/cobra"
)

// NewSeqCommand constructs the `seq` command.
func NewSeqCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq START",
		Short: "Emit consecutive identifiers starting at START",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			desc, _ := cmd.Flags().GetBool("desc")
			format, _ := cmd.Flags().GetString("format")

			if count < 1 {
				return fmt.Errorf("invalid --count; must be at least 1")
			}
			start, err := ulid.ParseAny(args[0])
			if err != nil {
				return err
			}
			seq := ulid.NewSequence(start, count)
			if desc {
				seq = seq.Reversed()
			}
			it := seq.Iter()
			for id, ok := it.Next(); ok; id, ok = it.Next() {
				out, err := formatULID(id, format)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().Int("count", 10, "Number of identifiers to emit")
	cmd.Flags().Bool("desc", false, "Walk the same identifiers in descending order")
	cmd.Flags().String("format", "canonical", "Output format: canonical|hex|oct|bin|int|uuid")
	return cmd
}
