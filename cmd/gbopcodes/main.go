package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oisee/gbopcodes/pkg/config"
	"github.com/oisee/gbopcodes/pkg/generate"
	"github.com/oisee/gbopcodes/pkg/result"
)

// errDrift is returned by check when the output file is out of date.
var errDrift = errors.New("output is out of date")

// flags holds command line overrides of the configuration.
type flags struct {
	configPath      string
	url             string
	input           string
	output          string
	format          string
	timeout         time.Duration
	debug           bool
	allowDuplicates bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "gbopcodes",
		Short: "Generate Game Boy opcode enums from the gbdev instruction table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &f)
		},
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&f.url, "url", "", "URL of Opcodes.json")
	pf.StringVar(&f.input, "input", "", "Read Opcodes.json from a local file instead of the URL")
	pf.StringVarP(&f.output, "output", "o", "", "Output file path")
	pf.StringVarP(&f.format, "format", "f", "", "Output format (zig, json)")
	pf.DurationVar(&f.timeout, "timeout", 0, "Fetch timeout (0 = none)")
	pf.BoolVarP(&f.debug, "debug", "d", false, "Debug logging")
	pf.BoolVar(&f.allowDuplicates, "allow-duplicates", false, "Let a repeated identifier replace the earlier opcode instead of failing")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch the instruction table and write the opcode file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &f)
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the opcode file matches the instruction table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, &f)
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the built catalogs for debugging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, &f)
		},
	}

	rootCmd.AddCommand(generateCmd, checkCmd, dumpCmd)
	return rootCmd
}

// loadConfig merges defaults, the optional config file and explicitly set
// flags, in that order.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		cfg, err = config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("url") {
		cfg.URL = f.url
	}
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if fs.Changed("allow-duplicates") {
		cfg.AllowDuplicates = f.allowDuplicates
	}
	return cfg, cfg.Validate()
}

// prepare builds the configuration and logger and runs the generator.
func prepare(cmd *cobra.Command, f *flags) (config.Config, *zap.Logger, *result.Result, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return cfg, nil, nil, err
	}
	log, err := cfg.Logger(f.debug)
	if err != nil {
		return cfg, nil, nil, err
	}

	res, err := generate.Run(cmd.Context(), log, cfg.Source(), generate.OptionsFrom(cfg))
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return cfg, log, nil, err
	}
	return cfg, log, res, nil
}

func runGenerate(cmd *cobra.Command, f *flags) error {
	cfg, log, res, err := prepare(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := res.WriteFile(cfg.Output); err != nil {
		log.Error("can't write output", zap.String("path", cfg.Output), zap.Error(err))
		return err
	}
	log.Info("opcodes written",
		zap.String("path", cfg.Output),
		zap.Int("unprefixed", res.Unprefixed.Len()),
		zap.Int("cbprefixed", res.CBPrefixed.Len()))
	return nil
}

func runCheck(cmd *cobra.Command, f *flags) error {
	cfg, log, res, err := prepare(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	diff, err := res.Diff(cfg.Output)
	if err != nil {
		return err
	}
	if diff != "" {
		fmt.Fprint(cmd.OutOrStdout(), diff)
		log.Warn("opcode file differs from the instruction table", zap.String("path", cfg.Output))
		return errDrift
	}
	log.Info("opcode file is up to date", zap.String("path", cfg.Output))
	return nil
}

func runDump(cmd *cobra.Command, f *flags) error {
	_, log, res, err := prepare(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	for _, c := range res.Catalogs() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, dropped %v\n", c.Space, c.Len(), c.Dropped)
		cs.Fdump(cmd.OutOrStdout(), c.Entries())
	}
	return nil
}
