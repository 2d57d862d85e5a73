package cli

import (
	"fmt"
	"strings"

	"postplan-cli/internal/model"
	"postplan-cli/internal/mutate"
	"postplan-cli/internal/summary"

	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Weekly schedule commands",
	}
	cmd.AddCommand(newScheduleShowCmd(app))
	cmd.AddCommand(newScheduleSetContentCmd(app))
	cmd.AddCommand(newScheduleToggleCmd(app))
	cmd.AddCommand(newScheduleClearCmd(app))
	return cmd
}

func parseDay(s string) (model.Day, error) {
	d := model.Day(strings.TrimSpace(s))
	if !model.ValidDay(d) {
		return "", fmt.Errorf("unknown day: %q (want Monday..Sunday)", s)
	}
	return d, nil
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the weekly schedule (or one day with --day)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if dayFlag == "" {
				return writeOut(cmd, app, map[string]any{
					"data": db.Schedule,
					"meta": map[string]any{"stats": summary.WeekStats(db)},
				})
			}
			day, err := parseDay(dayFlag)
			if err != nil {
				return writeErr(cmd, err)
			}
			ds, ok := db.FindDay(day)
			if !ok {
				return writeErr(cmd, errNotFound("day", dayFlag))
			}
			return writeOut(cmd, app, map[string]any{
				"data": ds,
				"meta": map[string]any{"stats": summary.StatsForDay(db, day)},
			})
		},
	}
	cmd.Flags().StringVar(&dayFlag, "day", "", "Day (Monday..Sunday)")
	return cmd
}

func newScheduleSetContentCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "set-content <day> <account-id> <post-id>",
		Short: "Set one post's content",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res := mutate.SetPostContent(db, day, args[1], args[2], content)
			if !res.Changed {
				return writeErr(cmd, errNotFound("post", args[2]))
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent("post.set_content", res.Post.ID, res.EventPayload)
			return writeOut(cmd, app, map[string]any{"data": res.Post})
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "Post content (empty clears the slot)")
	return cmd
}

func newScheduleToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <day> <account-id> <post-id>",
		Short: "Toggle a post's completion flag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res := mutate.TogglePost(db, day, args[1], args[2])
			if !res.Changed {
				return writeErr(cmd, errNotFound("post", args[2]))
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent("post.toggle", res.Post.ID, res.EventPayload)
			return writeOut(cmd, app, map[string]any{"data": res.Post})
		},
	}
}

func newScheduleClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear every post's content across the whole week (flags kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res := mutate.ClearAllPostContent(db)
			if res.Changed {
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				_ = s.AppendEvent("schedule.clear_content", "week", res.EventPayload)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"cleared": res.Cleared}})
		},
	}
}
