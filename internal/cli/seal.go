package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/cmpengine"
)

func (a *app) newSealCmd() *cobra.Command {
	var sensitive bool

	cmd := &cobra.Command{
		Use:   "seal FILE",
		Short: "Encode a description as a signed token",
		Long: `Encode a description as a URL-safe token accepted by the server's ?d=
parameter. Tokens are signed, or encrypted with --sensitive. Set server.key
(or CMPENGINE_SERVER_KEY) so the server can open them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := cmpengine.LoadDescription(args[0])
			if err != nil {
				return err
			}
			if a.cfg.Server.Key == "" {
				a.logger.Warn().Msg("No server.key configured, token is sealed with a throwaway key")
			}
			token, err := a.engine.Seal(desc, sensitive)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&sensitive, "sensitive", "s", false, "Encrypt instead of sign")

	return cmd
}

func (a *app) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open TOKEN",
		Short: "Decode a sealed token back to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := a.engine.Open(args[0])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(desc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode description: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
