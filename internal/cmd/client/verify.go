package client

import (
	"fmt"

	"github.com/srccircumflex/ulid-tool/pkg/ulid"
	"github.com/spf13/cobra"
)

// NewVerifyCommand constructs the `verify` command.
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run the host integrity checks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ulid.Verify(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
