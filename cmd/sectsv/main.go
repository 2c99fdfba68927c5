package main

import (
	"os"

	"github.com/dhamidi/sectsv/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("sectsv")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose int
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:     "sectsv",
		Short:   "Read and check section-structured tab-separated files",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			if verbose > 0 {
				cfg.Log.Verbosity = verbose
			}
			var logFile *string
			if cfg.Log.File != "" {
				logFile = &cfg.Log.File
			}
			commonlog.Configure(cfg.Log.Verbosity, logFile)
			log.Debugf("configuration: %+v", *cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newParseCmd(cfg))
	rootCmd.AddCommand(newCheckCmd(cfg))
	rootCmd.AddCommand(newLSPCmd(cfg))
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}
