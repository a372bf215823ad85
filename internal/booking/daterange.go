package booking

import "time"

// DateLayout is the wire format for check-in / check-out dates.
const DateLayout = "2006-01-02"

// DateRange is a half-open [checkIn, checkOut) interval over calendar dates.
// Both endpoints are date-only instants in UTC.
type DateRange struct {
	start time.Time
	end   time.Time
}

// today returns the current date truncated to midnight UTC.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// NewDateRange validates and builds a DateRange from date-only instants.
// allowPast permits a check-in before today, used when recomputing an existing
// booking whose stay may already have started.
func NewDateRange(checkIn, checkOut time.Time, horizonDays int, allowPast bool) (DateRange, error) {
	checkIn = checkIn.UTC().Truncate(24 * time.Hour)
	checkOut = checkOut.UTC().Truncate(24 * time.Hour)

	if !checkOut.After(checkIn) {
		return DateRange{}, ErrInvalidDateRange
	}
	if !allowPast && checkIn.Before(today()) {
		return DateRange{}, ErrCheckInPast
	}
	if horizonDays > 0 && checkIn.After(today().AddDate(0, 0, horizonDays)) {
		return DateRange{}, ErrCheckInTooFar
	}

	return DateRange{start: checkIn, end: checkOut}, nil
}

// ParseDateRange builds a DateRange from YYYY-MM-DD strings.
func ParseDateRange(checkIn, checkOut string, horizonDays int, allowPast bool) (DateRange, error) {
	start, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	end, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	return NewDateRange(start, end, horizonDays, allowPast)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Nights returns the number of nights covered by the range, minimum 1.
func (r DateRange) Nights() int {
	n := int(r.end.Sub(r.start).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

// Overlaps reports whether two half-open intervals intersect. This is the
// canonical form a < d && c < b; adjacent ranges sharing only a boundary date
// do not overlap. Every conflict check, including the SQL ledger predicate,
// mirrors this expression.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}
