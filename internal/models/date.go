package models

import "time"

// OrderDateFormat is the layout orders are stamped with: 12-hour clock with an
// AM/PM marker. Its first 10 characters are always a YYYY-MM-DD date, which is
// what day-level grouping keys on.
const (
	OrderDateFormat = "2006-01-02 03:04 PM"
	DayFormat       = "2006-01-02"
)

func FormatOrderDate(t time.Time) string {
	return t.Format(OrderDateFormat)
}

// DayPortion extracts the YYYY-MM-DD prefix of a stored order date. The second
// return is false when the prefix is not a parseable date; callers treat such
// rows as "no match" rather than failing.
func DayPortion(orderDate string) (string, bool) {
	if len(orderDate) < len(DayFormat) {
		return "", false
	}
	day := orderDate[:len(DayFormat)]
	if _, err := time.Parse(DayFormat, day); err != nil {
		return "", false
	}
	return day, true
}
