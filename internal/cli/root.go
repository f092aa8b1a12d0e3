// Package cli implements the cmpengine command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/cmpengine"
	"github.com/pthm/cmpengine/components"
	"github.com/pthm/cmpengine/internal/config"
	"github.com/pthm/cmpengine/internal/logging"
)

// Version is the CLI version, overridden at link time.
var Version = "0.1.0"

// app is the state shared by all commands once flags are parsed.
type app struct {
	configPath string
	verbosity  int
	cfg        *config.Config
	engine     *cmpengine.Engine
	logger     zerolog.Logger
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cmpengine",
		Short: "Build component trees into markup and styles",
		Long: `cmpengine renders declarative component descriptions (JSON, YAML, TOML or
MessagePack) into HTML with block markers, plus the scoped stylesheet the
components need.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (.toml or .yaml)")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(a.newRenderCmd())
	rootCmd.AddCommand(a.newStylesCmd())
	rootCmd.AddCommand(a.newTypesCmd())
	rootCmd.AddCommand(a.newDescribeCmd())
	rootCmd.AddCommand(a.newSealCmd())
	rootCmd.AddCommand(a.newOpenCmd())
	rootCmd.AddCommand(a.newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	verbosity := a.verbosity
	if !cmd.Flags().Changed("verbose") {
		verbosity = cfg.Verbosity
	}
	a.cfg = cfg
	logging.SetupLogger(verbosity)
	a.logger = logging.GetLogger("cli")

	opts := append(cfg.EngineOptions(), cmpengine.WithLogger(logging.GetLogger("engine")))
	a.engine = cmpengine.NewEngine(opts...)
	components.Register(a.engine.Registry())

	a.logger.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cmpengine version %s\n", Version)
		},
	}
}
