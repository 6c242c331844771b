package domain

import (
	"strings"
	"time"
)

// JobRequest is a submitted service request. Values are never mutated after
// the store creates them.
type JobRequest struct {
	ID          string    `json:"id"`
	Job         string    `json:"job"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Details     string    `json:"details"`
	TimeSlot    string    `json:"timeSlot"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Draft holds the in-progress form values.
type Draft struct {
	Job      string `json:"job"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Details  string `json:"details"`
	TimeSlot string `json:"timeSlot"`
}

// Field names a single draft field.
type Field string

const (
	FieldJob      Field = "job"
	FieldDate     Field = "date"
	FieldLocation Field = "location"
	FieldDetails  Field = "details"
	FieldTimeSlot Field = "timeSlot"
)

// Fields lists every draft field in form order.
var Fields = []Field{FieldJob, FieldDate, FieldLocation, FieldDetails, FieldTimeSlot}

// RequiredFields are the fields Submit refuses to leave empty.
var RequiredFields = []Field{FieldJob, FieldDate, FieldLocation, FieldTimeSlot}

// ParseField accepts the canonical names plus the snake_case spelling used by
// html form posts.
func ParseField(s string) (Field, bool) {
	switch strings.TrimSpace(s) {
	case "job":
		return FieldJob, true
	case "date":
		return FieldDate, true
	case "location":
		return FieldLocation, true
	case "details":
		return FieldDetails, true
	case "timeSlot", "time_slot":
		return FieldTimeSlot, true
	}
	return "", false
}

// Get returns the value of f. Unknown fields read as empty.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldJob:
		return d.Job
	case FieldDate:
		return d.Date
	case FieldLocation:
		return d.Location
	case FieldDetails:
		return d.Details
	case FieldTimeSlot:
		return d.TimeSlot
	}
	return ""
}

// With returns a copy of d with f set to value.
func (d Draft) With(f Field, value string) (Draft, error) {
	switch f {
	case FieldJob:
		d.Job = value
	case FieldDate:
		d.Date = value
	case FieldLocation:
		d.Location = value
	case FieldDetails:
		d.Details = value
	case FieldTimeSlot:
		d.TimeSlot = value
	default:
		return d, &UnknownFieldError{Name: string(f)}
	}
	return d, nil
}

func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Missing reports the required fields that are blank. Whitespace-only values
// count as blank.
func (d Draft) Missing() []Field {
	var out []Field
	for _, f := range RequiredFields {
		if strings.TrimSpace(d.Get(f)) == "" {
			out = append(out, f)
		}
	}
	return out
}

// Validate returns a *ValidationError when any required field is blank.
func (d Draft) Validate() error {
	if missing := d.Missing(); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// DraftOf returns the draft fields carried by r.
func DraftOf(r JobRequest) Draft {
	return Draft{
		Job:      r.Job,
		Date:     r.Date,
		Location: r.Location,
		Details:  r.Details,
		TimeSlot: r.TimeSlot,
	}
}
