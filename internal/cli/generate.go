package cli

import (
	"github.com/spf13/cobra"

	"github.com/okian/courtfmt/internal/testsessions"
)

func newGenerateCmd(_ *App) *cobra.Command {
	var (
		count  int
		sports []string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print sample sessions as JSON, suitable for piping into present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := testsessions.Generate(cmd.Context(), testsessions.Config{
				Count:  count,
				Sports: sports,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, sessions)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of sessions")
	cmd.Flags().StringSliceVar(&sports, "sport", nil, "Sport identifiers to draw from (repeatable)")
	return cmd
}
