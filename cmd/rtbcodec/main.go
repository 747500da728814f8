// Command rtbcodec decodes, validates and normalizes OpenRTB 2.5 bid requests.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anirudhraja/openrtb"
	"github.com/anirudhraja/openrtb/internal/config"
	"github.com/anirudhraja/openrtb/internal/observability"
	"github.com/anirudhraja/openrtb/registry"
)

// app holds state shared by all subcommands once the root command has run
// its setup.
type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	logger   *zap.Logger
	registry *registry.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{registry: registry.NewRegistry()}

	root := &cobra.Command{
		Use:           "rtbcodec",
		Short:         "Decode, validate and normalize OpenRTB 2.5 bid requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./rtbcodec.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newNormalizeCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newCodeCmd())
	root.AddCommand(newSchemaCmd(a))
	root.AddCommand(newSampleCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// newCodec returns a codec sharing the app's descriptor registry.
func (a *app) newCodec(strict bool) *openrtb.Codec {
	opts := []openrtb.Option{
		openrtb.WithLogger(a.logger),
		openrtb.WithRegistry(a.registry),
	}
	if strict {
		opts = append(opts, openrtb.WithStrict())
	}
	return openrtb.New(opts...)
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
