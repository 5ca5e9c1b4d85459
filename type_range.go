package bonddash

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsZero returns true when neither boundary is set, meaning "everything".
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }

// ParseRange parses the optional 'from' and 'to' boundaries. An empty string
// leaves the corresponding boundary open.
func ParseRange(from, to string) (Range, error) {
	var r Range
	var err error
	if from != "" {
		if r.From, err = ParseDate(from); err != nil {
			return Range{}, err
		}
	}
	if to != "" {
		if r.To, err = ParseDate(to); err != nil {
			return Range{}, err
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return Range{}, fmt.Errorf("invalid range: %s is after %s", r.From, r.To)
	}
	return r, nil
}

// clip restricts the range of days to the given boundaries. Open boundaries
// are left untouched.
func (r Range) clip(days []Date) []Date {
	var out []Date
	for _, d := range days {
		if !r.From.IsZero() && d.Before(r.From) {
			continue
		}
		if !r.To.IsZero() && d.After(r.To) {
			continue
		}
		out = append(out, d)
	}
	return out
}
