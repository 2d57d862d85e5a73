package cli

import (
	"strings"

	"postplan-cli/internal/mutate"
	"postplan-cli/internal/validate"

	"github.com/spf13/cobra"
)

func newAccountsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account commands",
	}
	cmd.AddCommand(newAccountsAddCmd(app))
	cmd.AddCommand(newAccountsListCmd(app))
	cmd.AddCommand(newAccountsShowCmd(app))
	cmd.AddCommand(newAccountsDeleteCmd(app))
	cmd.AddCommand(newAccountsHashtagsCmd(app))
	return cmd
}

func newAccountsAddCmd(app *App) *cobra.Command {
	var form validate.AccountForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account (fans out empty post slots to all seven days)",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, fieldErrs := validate.Account(form)
			if fieldErrs.Any() {
				return writeErr(cmd, errInvalidForm(fieldErrs))
			}

			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res := mutate.AddAccount(db, func(prefix string) string { return s.NextID(db, prefix) }, draft)
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent("account.add", res.Account.ID, res.EventPayload)
			return writeOut(cmd, app, map[string]any{"data": res.Account})
		},
	}

	cmd.Flags().StringVar(&form.Platform, "platform", "", "Platform (TikTok|Instagram)")
	cmd.Flags().StringVar(&form.Username, "username", "", "Account username")
	cmd.Flags().StringVar(&form.PhoneDevice, "device", "", "Phone device the account runs on")
	cmd.Flags().StringVar(&form.MonthlyEarnings, "earnings", "", "Monthly earnings (>= 0)")
	cmd.Flags().StringVar(&form.PostsPerDay, "posts-per-day", "", "Posts per day (>= 1, fixed after creation)")
	cmd.Flags().StringVar(&form.ContactName, "contact-name", "", "Contact name")
	cmd.Flags().StringVar(&form.ContactEmail, "contact-email", "", "Contact email (this or --contact-phone required)")
	cmd.Flags().StringVar(&form.ContactPhone, "contact-phone", "", "Contact phone (this or --contact-email required)")
	cmd.Flags().StringSliceVar(&form.Hashtags, "hashtag", nil, "Hashtag (repeatable, order kept)")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("device")
	_ = cmd.MarkFlagRequired("earnings")
	_ = cmd.MarkFlagRequired("posts-per-day")
	_ = cmd.MarkFlagRequired("contact-name")
	return cmd
}

func newAccountsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": db.Accounts})
		},
	}
}

func newAccountsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			a, ok := db.FindAccount(id)
			if !ok {
				return writeErr(cmd, errNotFound("account", id))
			}
			return writeOut(cmd, app, map[string]any{"data": a})
		},
	}
}

func newAccountsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account and its slots on all seven days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			res := mutate.DeleteAccount(db, id)
			if res.Changed {
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				_ = s.AppendEvent("account.delete", id, res.EventPayload)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": res.Changed}})
		},
	}
}

func newAccountsHashtagsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hashtags <account-id> [tag]...",
		Short: "Replace an account's hashtag list (full replace, order kept)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			res := mutate.UpdateHashtags(db, id, args[1:])
			if !res.Changed {
				return writeErr(cmd, errNotFound("account", id))
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent("account.set_hashtags", id, res.EventPayload)
			return writeOut(cmd, app, map[string]any{"data": res.Account})
		},
	}
}
