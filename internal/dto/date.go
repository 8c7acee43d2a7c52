package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date accepts either a calendar date ("2006-01-02") or a full RFC 3339 timestamp.
type Date time.Time

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*d = Date(t.UTC())
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", s)
	}
	*d = Date(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.RFC3339))
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

// TimeOr returns the wrapped time, or fallback when d is nil or zero.
func (d *Date) TimeOr(fallback time.Time) time.Time {
	if d == nil || time.Time(*d).IsZero() {
		return fallback
	}
	return time.Time(*d)
}

// TimePtr converts an optional date to an optional time.
func (d *Date) TimePtr() *time.Time {
	if d == nil || time.Time(*d).IsZero() {
		return nil
	}
	t := time.Time(*d)
	return &t
}

// DateRange is embedded in query structs that filter by date.
type DateRange struct {
	StartDate time.Time `form:"startDate" time_format:"2006-01-02" time_utc:"1"`
	EndDate   time.Time `form:"endDate" time_format:"2006-01-02" time_utc:"1"`
}

// Bounds converts the range to optional bounds. The end date is inclusive of the whole day.
func (r DateRange) Bounds() (start, end *time.Time) {
	if !r.StartDate.IsZero() {
		s := r.StartDate
		start = &s
	}
	if !r.EndDate.IsZero() {
		e := r.EndDate.Add(24*time.Hour - time.Nanosecond)
		end = &e
	}
	return start, end
}
