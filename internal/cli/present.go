package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	service "github.com/okian/courtfmt/internal/app"
	"github.com/okian/courtfmt/internal/domain/model"
)

func newPresentCmd(app *App) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "present [file]",
		Short: "Render a JSON array of sessions; reads stdin when no file or - is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			sessions, err := readSessions(in)
			if err != nil {
				return err
			}
			svc := service.New(
				service.WithFormatter(app.formatter),
				service.WithWorkerCount(workers),
				service.WithMaxBatchSize(max(len(sessions), 1)),
			)
			views, err := svc.PresentAll(cmd.Context(), sessions)
			if err != nil {
				return err
			}
			return writeJSON(cmd, views)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent sessions (default: number of CPUs)")
	return cmd
}

// readSessions accepts either a bare array or {"sessions": [...]}. The
// first non-space byte picks the shape so decode errors name the real cause.
func readSessions(r io.Reader) ([]model.Session, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var sessions []model.Session
		if err := json.Unmarshal(trimmed, &sessions); err != nil {
			return nil, fmt.Errorf("decode sessions: %w", err)
		}
		return sessions, nil
	}
	var wrapped struct {
		Sessions []model.Session `json:"sessions"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}
	return wrapped.Sessions, nil
}
