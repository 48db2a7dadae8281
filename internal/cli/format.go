package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/okian/courtfmt/pkg/format"
)

func newSportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sport <identifier>",
		Short: "Title-case a sport identifier (table_tennis -> Table Tennis)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeValue(cmd, app, format.SportName(args[0]))
		},
	}
}

func newDateCmd(app *App) *cobra.Command {
	var (
		detailed bool
		styles   = map[string]*string{}
	)
	cmd := &cobra.Command{
		Use:   "date <timestamp>",
		Short: "Render a timestamp as a short or detailed date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if detailed {
				out, err := app.formatter.DetailedDate(args[0])
				if err != nil {
					return err
				}
				return writeValue(cmd, app, out)
			}

			var opts format.DateOptions
			fields := map[string]*format.Style{
				"weekday": &opts.Weekday,
				"year":    &opts.Year,
				"month":   &opts.Month,
				"day":     &opts.Day,
				"hour":    &opts.Hour,
				"minute":  &opts.Minute,
				"second":  &opts.Second,
			}
			for name, raw := range styles {
				st, err := format.ParseStyle(*raw)
				if err != nil {
					return fmt.Errorf("--%s: %w", name, err)
				}
				*fields[name] = st
			}
			out, err := app.formatter.Date(args[0], opts)
			if err != nil {
				return err
			}
			return writeValue(cmd, app, out)
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Weekday, full month and year")
	for _, name := range []string{"weekday", "year", "month", "day", "hour", "minute", "second"} {
		styles[name] = cmd.Flags().String(name, "", "Style for the "+name+" field (numeric, 2-digit, short, long, narrow)")
	}
	return cmd
}

func newDurationCmd(app *App) *cobra.Command {
	var detailed bool
	cmd := &cobra.Command{
		Use:   "duration <start> [end]",
		Short: "Render the span between two timestamps; omit end for a running session",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var end *string
			if len(args) == 2 {
				end = &args[1]
			}
			render := app.formatter.SessionDuration
			if detailed {
				render = app.formatter.DetailedDuration
			}
			out, err := render(args[0], end)
			if err != nil {
				return err
			}
			return writeValue(cmd, app, out)
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, `Use "N minutes" below one hour`)
	return cmd
}

func newClockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clock <seconds>",
		Short: "Render elapsed seconds as M:SS or H:MM:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("seconds: %w", err)
			}
			return writeValue(cmd, app, format.Clock(seconds))
		},
	}
}

func newMinutesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "minutes <minutes>",
		Short: "Render fractional minutes as M:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("minutes: %w", err)
			}
			if !format.ValidMinutes(minutes) {
				return fmt.Errorf("minutes must be finite and at most %g: %q", format.MaxMinutes, args[0])
			}
			return writeValue(cmd, app, format.Minutes(minutes))
		},
	}
}
