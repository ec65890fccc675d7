package part

import "time"

// Date is the body of a date field. The raw text is always kept. The parsed
// time is only present when the text could be understood as a date.
type Date struct {
	base
	raw      string
	t        time.Time
	ok       bool
	comments []*Comment
}

// NewDate returns a date part from raw text and the result of parsing it. A
// non-nil err marks the time as absent.
func NewDate(raw string, t time.Time, err error, comments []*Comment) *Date {
	d := &Date{raw: raw, comments: copyComments(comments)}
	if err == nil {
		d.t, d.ok = t, true
	}
	return d
}

func (*Date) Kind() Kind { return KindDate }

// Value returns the raw date text.
func (d *Date) Value() string { return d.raw }

// Time returns the parsed time and true, or the zero time and false when the
// text could not be parsed.
func (d *Date) Time() (time.Time, bool) { return d.t, d.ok }

// Comments returns any comments found within the date text.
func (d *Date) Comments() []*Comment { return copyComments(d.comments) }
