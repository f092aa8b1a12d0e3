package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/cmpengine"
)

func (a *app) newStylesCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "styles FILE",
		Short: "Print the scoped stylesheet for a description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := cmpengine.LoadDescription(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("namespace") {
				namespace = a.engine.Namespace()
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.Registry().CollectStyles(desc, namespace))
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Selector every rule is scoped under (empty disables scoping)")

	return cmd
}
