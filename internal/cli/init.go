package cli

import (
	"postplan-cli/internal/store"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the store dir with an empty week",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Dir
			if dir == "" {
				d, err := store.DefaultDir()
				if err != nil {
					return writeErr(cmd, err)
				}
				dir = d
				app.Dir = dir
			}
			s := store.Store{Dir: dir}
			db, err := s.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"dir": dir, "accounts": len(db.Accounts)},
			})
		},
	}
}
