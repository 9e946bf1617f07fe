package cli

import (
	"bufio"
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kirill-Lekhov/notalib/internal/config"
	"github.com/Kirill-Lekhov/notalib/internal/logger"
	"github.com/Kirill-Lekhov/notalib/internal/util"
	"github.com/Kirill-Lekhov/notalib/polosa"
	"github.com/Kirill-Lekhov/notalib/timing"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Render a throughput indicator over stdin lines or generated items",
		Long:  "Repaints a single status line with the processed count and items/sec rate, driven by stdin lines or by --count synthetic items. The final summary line is always written, even when input fails midway.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			total, _ := cmd.Flags().GetInt("total")
			count, _ := cmd.Flags().GetInt("count")
			delay, _ := cmd.Flags().GetDuration("delay")
			if total == 0 && count > 0 {
				total = count
			}
			interval := cfg.Progress.Interval()
			if v, _ := cmd.Flags().GetDuration("interval"); v > 0 {
				interval = v
			}
			// The explicit flag wins over the config file in both directions.
			noCaptions := cfg.Progress.NoCaptions
			if cmd.Flags().Changed("no-captions") {
				noCaptions, _ = cmd.Flags().GetBool("no-captions")
			}

			log := logger.FromContext(cmd.Context())
			sp := timing.Start(log.With("command", "progress"), "progress")

			items := 0
			opts := polosa.Options{
				Total:      total,
				Out:        cmd.OutOrStdout(),
				Interval:   interval,
				NoCaptions: noCaptions,
			}
			err = polosa.Scope(opts, func(p *polosa.Polosa) error {
				if count > 0 {
					return generateTicks(cmd.Context(), p, count, delay, &items)
				}
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					items++
					if err := p.TickMsg(util.Truncate(sc.Text(), 48)); err != nil {
						return err
					}
				}
				return sc.Err()
			})
			sp.Done("items", items)
			return err
		},
	}
	cmd.Flags().Int("total", 0, "Expected number of items (defaults to --count when generating)")
	cmd.Flags().Int("count", 0, "Generate this many synthetic items instead of reading stdin")
	cmd.Flags().Duration("delay", 0, "Pause between synthetic items")
	cmd.Flags().Duration("interval", 0, "Minimum delay between status lines (overrides config)")
	cmd.Flags().Bool("no-captions", false, "Hide per-line captions (overrides config)")
	return cmd
}

// generateTicks drives the indicator with synthetic work so the command can
// be demoed without piped input.
func generateTicks(ctx context.Context, p *polosa.Polosa, n int, delay time.Duration, items *int) error {
	for i := 0; i < n; i++ {
		if err := p.Tick(); err != nil {
			return err
		}
		*items++
		if delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}
