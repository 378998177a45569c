package achievement

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sujalpowar2903-sys/studenthub123/core"
)

type Category string

// Categories
const (
	CategoryWorkshop      Category = "Workshop"
	CategoryInternship    Category = "Internship"
	CategoryVolunteering  Category = "Volunteering"
	CategoryCertification Category = "Certification"
	CategoryLeadership    Category = "Leadership"
	CategoryCompetition   Category = "Competition"
	CategoryResearch      Category = "Research"
	CategoryPublication   Category = "Publication"
)

// Categories in display order.
var Categories = []Category{
	CategoryWorkshop,
	CategoryInternship,
	CategoryVolunteering,
	CategoryCertification,
	CategoryLeadership,
	CategoryCompetition,
	CategoryResearch,
	CategoryPublication,
}

func (c Category) IsValid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Attachment references a selected file. Only what is needed for display is kept; the bytes never are.
type Attachment struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

// Draft is an achievement being filled in. It only lives until it is submitted or discarded.
type Draft struct {
	ID          string       `json:"id"`
	SessionID   string       `json:"-"`
	Title       string       `json:"title"`
	Category    Category     `json:"category"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	PendingTag  string       `json:"pending_tag"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"created_at"` // UTC
}

// DraftUpdate defines what information may be provided to edit a Draft. Nil fields are left untouched.
type DraftUpdate struct {
	Title       *string   `json:"title"`
	Category    *Category `json:"category" validate:"omitempty,category"`
	Date        *string   `json:"date" validate:"omitempty,isodate"`
	Description *string   `json:"description"`
}

func (du *DraftUpdate) Validate(validate *validator.Validate) error {
	if du.Category != nil {
		c := Category(core.CleanString(string(*du.Category)))
		du.Category = &c
	}
	if du.Date != nil {
		d := core.CleanString(*du.Date)
		du.Date = &d
	}
	return validate.Struct(du)
}

// submission is what gets checked before a Draft may be submitted.
type submission struct {
	Title    string   `json:"title" validate:"required"`
	Category Category `json:"category" validate:"required,category"`
	Date     string   `json:"date" validate:"required,isodate"`
}

// SubmitResult tells the client what to show and where to go after a submit.
type SubmitResult struct {
	Notification core.Notification `json:"notification"`
	Redirect     string            `json:"redirect,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"`
}

var (
	NotificationMissingInformation = core.Notification{
		Title:       "Missing Information",
		Description: "Please fill in all required fields.",
		Variant:     core.VariantDestructive,
	}

	NotificationSubmitted = core.Notification{
		Title:       "Achievement Submitted!",
		Description: "Your achievement has been submitted for review. You'll be notified once it's approved.",
		Variant:     core.VariantDefault,
	}
)
