package achievement

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SetPendingTag sets the tag input without adding it.
func (d *Draft) SetPendingTag(s string) {
	d.PendingTag = s
}

// CommitTag adds the trimmed pending tag unless it is blank or already present (exact, case-sensitive match).
// The pending input is cleared only when the tag was added.
func (d *Draft) CommitTag() bool {
	tag := strings.TrimSpace(d.PendingTag)
	if tag == "" || d.HasTag(tag) {
		return false
	}
	d.Tags = append(d.Tags, tag)
	d.PendingTag = ""
	return true
}

// AddTag is SetPendingTag followed by CommitTag.
func (d *Draft) AddTag(s string) bool {
	d.SetPendingTag(s)
	return d.CommitTag()
}

func (d *Draft) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RemoveTag removes tag, matched exactly. It is a no-op if tag is absent.
func (d *Draft) RemoveTag(tag string) bool {
	for i, t := range d.Tags {
		if t == tag {
			d.Tags = append(d.Tags[:i:i], d.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// Attach appends file references in the order given.
func (d *Draft) Attach(refs ...Attachment) {
	d.Attachments = append(d.Attachments, refs...)
}

// Detach removes the attachment at index. It is a no-op if index is out of range.
func (d *Draft) Detach(index int) bool {
	if index < 0 || index >= len(d.Attachments) {
		return false
	}
	d.Attachments = append(d.Attachments[:index:index], d.Attachments[index+1:]...)
	return true
}

// Apply copies the set fields of du onto the Draft.
func (d *Draft) Apply(du DraftUpdate) {
	if du.Title != nil {
		d.Title = *du.Title
	}
	if du.Category != nil {
		d.Category = *du.Category
	}
	if du.Date != nil {
		d.Date = *du.Date
	}
	if du.Description != nil {
		d.Description = *du.Description
	}
}

// Validate checks that the Draft may be submitted: title, category and date must not be empty.
// A title made of spaces is still a title.
func (d Draft) Validate(validate *validator.Validate) error {
	return validate.Struct(d.submission())
}

func (d Draft) submission() submission {
	return submission{
		Title:    d.Title,
		Category: d.Category,
		Date:     d.Date,
	}
}

func (d Draft) clone() Draft {
	c := d
	c.Tags = append([]string{}, d.Tags...)
	c.Attachments = append([]Attachment{}, d.Attachments...)
	return c
}
