// Package cli implements the courtfmt command line.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/courtfmt/internal/domain/types"
	"github.com/okian/courtfmt/pkg/format"
)

// App holds the persistent flags shared by every subcommand.
type App struct {
	TimeZone string
	JSON     bool

	formatter *format.Formatter
}

// NewRootCmd builds the courtfmt command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "courtfmt",
		Short:        "Format racket-sport session data for display",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  courtfmt sport table_tennis
  courtfmt date 2024-01-15T10:30:00Z --tz Europe/Berlin
  courtfmt duration 2024-01-01T10:00:00Z 2024-01-01T11:30:00Z
  courtfmt clock 3661
  courtfmt generate -n 5 | courtfmt present
`),
	}

	cmd.PersistentFlags().StringVar(&app.TimeZone, "tz", "UTC", "IANA time zone dates are rendered in")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, `Print {"value": ...} JSON instead of plain text`)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loc, err := format.LoadLocation(app.TimeZone)
		if err != nil {
			return err
		}
		app.formatter = format.New(format.WithLocation(loc))
		return nil
	}

	cmd.AddCommand(
		newSportCmd(app),
		newDateCmd(app),
		newDurationCmd(app),
		newClockCmd(app),
		newMinutesCmd(app),
		newPresentCmd(app),
		newGenerateCmd(app),
	)
	return cmd
}

// writeValue prints one formatted value.
func writeValue(cmd *cobra.Command, app *App, v string) error {
	if app.JSON {
		return writeJSON(cmd, types.Value{Value: v})
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
