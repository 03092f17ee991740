package client

import (
	"fmt"

	idsvc "github.com/srccircumflex/ulid-tool/internal/services/ids"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
	"github.com/spf13/cobra"
)

// NewNewCommand constructs the `new` command.
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate identifiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			format, _ := cmd.Flags().GetString("format")
			slid, _ := cmd.Flags().GetBool("slid")
			plain, _ := cmd.Flags().GetBool("plain")
			at, _ := cmd.Flags().GetString("at")

			if plain {
				for i := 0; i < count; i++ {
					var s string
					var err error
					if at != "" {
						t, perr := parseAt(at)
						if perr != nil {
							return perr
						}
						s, err = ulid.PlainAt(t)
					} else {
						s, err = ulid.Plain()
					}
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
				return nil
			}

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			svc, err := idsvc.Open(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			if slid {
				ids, err := svc.GenerateSLID(count)
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id.String())
				}
				return nil
			}

			var ids []ulid.ULID
			if at != "" {
				t, perr := parseAt(at)
				if perr != nil {
					return perr
				}
				ids, err = svc.GenerateAt(t, count)
			} else {
				ids, err = svc.Generate(count)
			}
			if err != nil {
				return err
			}
			for _, id := range ids {
				out, err := formatULID(id, format)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().Int("count", 1, "Number of identifiers to emit")
	cmd.Flags().Bool("slid", false, "Emit 64-bit short identifiers (hex)")
	cmd.Flags().Bool("plain", false, "Emit a one-shot identifier straight from time and fresh entropy")
	cmd.Flags().String("at", "", "Fix the timestamp: RFC3339 or unix epoch milliseconds")
	addGenerateFlags(cmd)
	return cmd
}
