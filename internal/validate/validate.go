// Package validate is the form-layer validation surface for new accounts.
// The core mutations perform no re-validation; callers run this first.
package validate

import (
	"strconv"
	"strings"

	"postplan-cli/internal/model"
)

// AccountForm holds raw form input, pre-parse. Earnings and posts-per-day
// arrive as strings the same way a text field would deliver them.
type AccountForm struct {
	Platform        string
	Username        string
	PhoneDevice     string
	MonthlyEarnings string
	PostsPerDay     string
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	Hashtags        []string
}

// FieldErrors maps field name -> user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Any() bool { return len(e) > 0 }

// Account validates the form and, when valid, returns the draft ready for
// mutate.AddAccount.
func Account(f AccountForm) (model.AccountDraft, FieldErrors) {
	errs := FieldErrors{}

	platform := model.Platform(strings.TrimSpace(f.Platform))
	if !model.ValidPlatform(platform) {
		errs["platform"] = "Platform must be TikTok or Instagram"
	}

	username := strings.TrimSpace(f.Username)
	if username == "" {
		errs["username"] = "Username is required"
	}
	device := strings.TrimSpace(f.PhoneDevice)
	if device == "" {
		errs["phoneDevice"] = "Phone device is required"
	}

	earnings, err := strconv.ParseFloat(strings.TrimSpace(f.MonthlyEarnings), 64)
	if err != nil {
		errs["monthlyEarnings"] = "Monthly earnings must be a number"
	} else if earnings < 0 {
		errs["monthlyEarnings"] = "Monthly earnings must be zero or more"
	}

	postsPerDay, err := strconv.Atoi(strings.TrimSpace(f.PostsPerDay))
	if err != nil {
		errs["postsPerDay"] = "Posts per day must be a whole number"
	} else if postsPerDay < 1 {
		errs["postsPerDay"] = "Posts per day must be at least 1"
	}

	contactName := strings.TrimSpace(f.ContactName)
	if contactName == "" {
		errs["contactName"] = "Contact name is required"
	}

	email := strings.TrimSpace(f.ContactEmail)
	phone := strings.TrimSpace(f.ContactPhone)
	if email == "" && phone == "" {
		errs["contactEmail"] = "Either email or phone is required"
		errs["contactPhone"] = "Either email or phone is required"
	}

	if errs.Any() {
		return model.AccountDraft{}, errs
	}

	tags := f.Hashtags
	if tags == nil {
		tags = []string{}
	}
	return model.AccountDraft{
		Platform:        platform,
		Username:        username,
		PhoneDevice:     device,
		MonthlyEarnings: earnings,
		PostsPerDay:     postsPerDay,
		Contact:         model.Contact{Name: contactName, Email: email, Phone: phone},
		Hashtags:        tags,
	}, nil
}
