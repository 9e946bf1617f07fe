package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kirill-Lekhov/notalib/apperr"
	"github.com/Kirill-Lekhov/notalib/internal/config"
	"github.com/Kirill-Lekhov/notalib/internal/logger"
	"github.com/Kirill-Lekhov/notalib/internal/ui"
)

// verbose controls extra error detail printing.
var verbose bool

// Execute runs the root command and handles error formatting and exit codes.
func Execute(ctx context.Context) int {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		printUserFriendly(err)
		if apperr.IsKind(err, apperr.InvalidInput) {
			return 2
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "notalib",
		Short:         "Small data and terminal utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (defaults to notalib.yml or notalib.yaml in current directory)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose error output")

	// Every subcommand gets a configured logger through its context.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		l := logger.New(logger.Options{
			Out:    cmd.ErrOrStderr(),
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
		})
		cmd.SetContext(logger.WithContext(cmd.Context(), l))
		return nil
	}

	cmd.AddCommand(newProgressCmd())
	cmd.AddCommand(newDateCmd())
	cmd.AddCommand(newChunkCmd())
	cmd.AddCommand(newTableCmd())

	cmd.SetVersionTemplate(fmt.Sprintf("%s\n", Version()))
	cmd.Version = Version()

	return cmd
}

func Version() string { return "0.1.0-dev" }

func printUserFriendly(err error) {
	p := ui.StdPrinter{Out: os.Stdout, Err: os.Stderr}
	var e *apperr.E
	if errors.As(err, &e) && e.Msg != "" {
		p.Error("%s", e.Msg)
		if verbose {
			p.Error("detail: %v", err)
		}
		return
	}
	p.Error("%v", err)
}
