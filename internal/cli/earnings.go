package cli

import (
	"postplan-cli/internal/summary"

	"github.com/spf13/cobra"
)

func newEarningsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "earnings",
		Short: "Monthly earnings per account plus the roster total",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rows, total := summary.EarningsTable(db.Accounts)
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"accounts": rows,
					"total":    total,
				},
			})
		},
	}
}
