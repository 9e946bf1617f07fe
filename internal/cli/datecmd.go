package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kirill-Lekhov/notalib/date"
	"github.com/Kirill-Lekhov/notalib/internal/config"
)

func newDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Date parsing helpers",
	}
	cmd.AddCommand(newDateNormalizeCmd())
	cmd.AddCommand(newDateWeekCmd())
	return cmd
}

func newDateNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <value>",
		Short: "Convert a date string between layouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			in, _ := cmd.Flags().GetStringSlice("in")
			if len(in) == 0 {
				in = cfg.Date.InputLayouts
			}
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = cfg.Date.OutputLayout
			}
			got, err := date.Normalize(args[0], in, out, false)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}
	cmd.Flags().StringSlice("in", nil, "Input layouts to try, in order (defaults to config)")
	cmd.Flags().String("out", "", "Output layout (defaults to config)")
	return cmd
}

func newDateWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week <value>",
		Short: "Show the calendar week of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			in, _ := cmd.Flags().GetStringSlice("in")
			if len(in) == 0 {
				in = cfg.Date.InputLayouts
			}
			t, err := date.Parse(args[0], in...)
			if err != nil {
				return err
			}
			mode := date.WeekModeNormal
			if matchYear, _ := cmd.Flags().GetBool("match-year"); matchYear {
				mode = date.WeekModeMatchYear
			}
			w, err := date.WeekOf(t, mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), w)
			return nil
		},
	}
	cmd.Flags().StringSlice("in", nil, "Input layouts to try, in order (defaults to config)")
	cmd.Flags().Bool("match-year", false, "Number weeks 0..53 so the week's year always matches the date")
	return cmd
}
