package model

type Platform string

const (
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram"
)

func ValidPlatform(p Platform) bool {
	return p == PlatformTikTok || p == PlatformInstagram
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Account struct {
	ID              string   `json:"id"`
	Platform        Platform `json:"platform"`
	Username        string   `json:"username"`
	PhoneDevice     string   `json:"phoneDevice"`
	MonthlyEarnings float64  `json:"monthlyEarnings"`
	Contact         Contact  `json:"contact"`
	PostsPerDay     int      `json:"postsPerDay"`

	// Ordered, duplicates allowed; never deduped.
	Hashtags []string `json:"hashtags"`
}

// AccountDraft is an Account before id assignment (everything the add form collects).
type AccountDraft struct {
	Platform        Platform
	Username        string
	PhoneDevice     string
	MonthlyEarnings float64
	Contact         Contact
	PostsPerDay     int
	Hashtags        []string
}

type Post struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days is the fixed week order. Never reordered.
var Days = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ValidDay(d Day) bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// AccountPosts is one account's post slots within a single day.
type AccountPosts struct {
	AccountID string `json:"accountId"`
	Posts     []Post `json:"posts"`
}

type DaySchedule struct {
	Day      Day            `json:"day"`
	Accounts []AccountPosts `json:"accounts"`
}

// WeeklySchedule serializes as a bare array of the seven day schedules,
// matching the wire format of older versions.
type WeeklySchedule []DaySchedule

// NewWeeklySchedule returns an empty week: all seven days, no account entries.
func NewWeeklySchedule() WeeklySchedule {
	week := make(WeeklySchedule, 0, len(Days))
	for _, d := range Days {
		week = append(week, DaySchedule{Day: d, Accounts: []AccountPosts{}})
	}
	return week
}
