package activity

import (
	"strings"

	"github.com/sujalpowar2903-sys/studenthub123/core"
)

type Status string

// Statuses
const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// Badge is how a Status is displayed: a style class and an optional icon.
type Badge struct {
	Class string `json:"class"`
	Icon  string `json:"icon,omitempty"`
}

var badges = map[Status]Badge{
	StatusApproved: {Class: "bg-success/10 text-success border-success/20", Icon: "check-circle"},
	StatusPending:  {Class: "bg-warning/10 text-warning border-warning/20", Icon: "clock"},
	StatusRejected: {Class: "bg-destructive/10 text-destructive border-destructive/20", Icon: "x-circle"},
}

// BadgeFor maps a Status to its Badge. Unknown statuses get an empty Badge.
func BadgeFor(s Status) Badge {
	return badges[s]
}

// Activity is a read-only record of the activity history.
type Activity struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Date        string `json:"date"` // YYYY-MM-DD
	Status      Status `json:"status"`
	Description string `json:"description"`
}

// Entry is an Activity as listed on the dashboard.
type Entry struct {
	Activity
	Badge Badge `json:"badge"`
}

// Tile is a read-only statistic.
type Tile struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// Action is a navigation offered by the dashboard. It carries no data.
type Action struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Profile struct {
	Name      string `json:"name"`
	Initials  string `json:"initials"`
	Program   string `json:"program"`
	StudentID string `json:"student_id"`
}

type Dashboard struct {
	Profile    Profile  `json:"profile"`
	Stats      []Tile   `json:"stats"`
	Activities []Entry  `json:"activities"`
	Actions    []Action `json:"actions"`
	Logout     Action   `json:"logout"`
}

type QueryFilter struct {
	Search   string `json:"search" query:"search"`
	Status   Status `json:"status" query:"status" validate:"omitempty,oneof=approved pending rejected"`
	Category string `json:"category" query:"category"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = Status(core.CleanString(string(qf.Status), true /* lower */))
	qf.Category = core.CleanString(qf.Category)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Status == "" && qf.Category == ""
}

func (qf *QueryFilter) match(a Activity) bool {
	if qf.Status != "" && a.Status != qf.Status {
		return false
	}
	if qf.Category != "" && !strings.EqualFold(a.Category, qf.Category) {
		return false
	}
	if qf.Search != "" {
		s := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(a.Title), s) && !strings.Contains(strings.ToLower(a.Description), s) {
			return false
		}
	}
	return true
}
