package cmd

import (
	"context"
	"fmt"
	"strings"
)

// HistoryCmd shows recent launches from the history database
type HistoryCmd struct {
	Limit int `help:"Maximum number of launches to show" default:"20"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli.Settings())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	repo := container.History()
	if repo == nil {
		return fmt.Errorf("launch history is unavailable")
	}

	launches, err := repo.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if len(launches) == 0 {
		fmt.Println("No launches recorded yet")
		return nil
	}

	for _, l := range launches {
		names := make([]string, 0, len(l.Jobs))
		for _, j := range l.Jobs {
			names = append(names, j.DisplayName)
		}
		fmt.Printf("%s  %-10s  %-12s  %d job(s): %s\n",
			l.LaunchedAt.Local().Format("2006-01-02 15:04:05"),
			l.Mode,
			l.SessionName,
			len(l.Jobs),
			strings.Join(names, ", "))
	}
	return nil
}
