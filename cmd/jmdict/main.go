// Command jmdict parses a JMdict XML dictionary file and reports what it found.
// It is intended to be run offline, as a check or as a preprocessing step.
//
// Commands:
//
//	parse    parse a JMdict file (flags: --input, --config, --dump, --report-every)
//	version  print build information
//
// Settings come from the YAML file given by --config (else CONFIG_PATH, else
// ./config.yaml) and from LOG_* / JMDICT_* environment variables.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/jmdict/internal/app"
	"github.com/heartmarshall/jmdict/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "jmdict",
	Short:         "Streaming parser for the JMdict Japanese dictionary",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var parseFlags struct {
	input       string
	config      string
	dump        bool
	reportEvery int
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a JMdict XML file",
	Args:  cobra.NoArgs,
	RunE:  runParse,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFlags.input, "input", "i", "", "path to the JMdict XML file")
	parseCmd.Flags().StringVar(&parseFlags.config, "config", "", "path to YAML config file (default: CONFIG_PATH or ./config.yaml)")
	parseCmd.Flags().BoolVar(&parseFlags.dump, "dump", false, "write entries to stdout as JSON lines")
	parseCmd.Flags().IntVar(&parseFlags.reportEvery, "report-every", 0, "log progress every N entries (0 keeps config value)")

	rootCmd.AddCommand(parseCmd, versionCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	appCfg, err := config.Load(parseFlags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(appCfg.Log)
	cfg := appCfg.JMdict

	// CLI flags override config.
	if parseFlags.input != "" {
		cfg.Path = parseFlags.input
	}
	if parseFlags.dump {
		cfg.Dump = true
	}
	if parseFlags.reportEvery > 0 {
		cfg.ReportEvery = parseFlags.reportEvery
	}
	if cfg.Path == "" {
		return fmt.Errorf("no input file: pass --input or set JMDICT_PATH")
	}

	result, err := app.Run(cmd.Context(), logger, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// With --dump stdout carries entries, so the summary moves to stderr.
	summary := cmd.OutOrStdout()
	if cfg.Dump {
		summary = cmd.ErrOrStderr()
	}
	fmt.Fprintf(summary, "Parsed %d entries\n", len(result.Entries))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Printf("jmdict: %v", err)
		os.Exit(1)
	}
}
