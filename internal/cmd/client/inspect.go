package client

import (
	"encoding/json"
	"fmt"

	idsvc "github.com/srccircumflex/ulid-tool/internal/services/ids"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
	"github.com/spf13/cobra"
)

// NewInspectCommand constructs the `inspect` command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect REPR",
		Short: "Decode an identifier from any representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			id, err := ulid.ParseAny(args[0])
			if err != nil {
				return err
			}
			info := idsvc.Describe(id)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "canonical:  %s\n", info.Canonical)
			fmt.Fprintf(w, "hex:        %s\n", info.Hex)
			fmt.Fprintf(w, "oct:        %s\n", info.Oct)
			fmt.Fprintf(w, "bin:        %s\n", info.Bin)
			fmt.Fprintf(w, "int:        %s\n", info.Int)
			fmt.Fprintf(w, "uuid:       %s\n", info.UUID)
			fmt.Fprintf(w, "timestamp:  %d (%s)\n", info.TimestampMs, info.Time)
			fmt.Fprintf(w, "randomness: %s\n", info.Randomness)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print as JSON")
	return cmd
}
