package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathanmweiss/go-polycalc"
	"github.com/jonathanmweiss/go-polycalc/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

type options struct {
	configPath string
	verbose    bool
	traceStack bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "polycalc [file]",
		Short: "Stack calculator for sparse multivariate integer polynomials",
		Long: `polycalc reads one instruction per line, from the given file or stdin.

A line is a polynomial literal to push, such as ((1,2)+(-3,0),1), or one of
the commands ZERO, IS_COEFF, IS_ZERO, CLONE, ADD, MUL, NEG, SUB, IS_EQ, DEG,
DEG_BY idx, AT x, PRINT, POP, COMPOSE k and FINGERPRINT. Results go to stdout,
"ERROR <line> <reason>" reports to stderr.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "polycalc.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")
	rootCmd.Flags().BoolVar(&opts.traceStack, "trace-stack", false, "log the stack after every line (implies --verbose)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the polycalc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "polycalc", version)
		},
	})

	return rootCmd
}

func (o *options) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("trace-stack") {
		cfg.Calculator.TraceStack = o.traceStack
	}

	if o.verbose || cfg.Calculator.TraceStack {
		cfg.Logging.DebugMode = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg

	if !cfg.Logging.DebugMode {
		o.logger = zap.NewNop()
		return nil
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.ZapLevel())
	if o.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	o.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	calc, err := polycalc.NewCalculator(cmd.OutOrStdout(), polycalc.Options{
		Logger:           o.logger,
		FingerprintPrime: o.cfg.Calculator.FingerprintPrime,
		TraceStack:       o.cfg.Calculator.TraceStack,
		MaxLineBytes:     o.cfg.Calculator.MaxLineBytes,
	})
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		in = f
	}

	o.logger.Debug("starting", zap.String("config", o.configPath), zap.Bool("trace_stack", o.cfg.Calculator.TraceStack))

	return calc.Run(cmd.Context(), in, cmd.ErrOrStderr())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "polycalc:", err)
		stop()
		os.Exit(1)
	}
}
