package transaction

import (
	"strconv"
	"time"
)

// ValidateDate reports whether raw is a well-formed YYYY-MM-DD token:
// exactly ten characters, literal dashes at positions 4 and 7, numeric
// year/month/day fields, month in [1,12] and day in [1,31].
//
// Month-specific day counts and leap years are deliberately not checked.
func ValidateDate(raw string) bool {
	_, _, _, ok := dateFields(raw)
	return ok
}

// IsFutureDate classifies an already validated date token as strictly after
// the calendar day of now, with time-of-day truncated to midnight in now's
// location. Same-day and past dates are not future.
func IsFutureDate(raw string, now time.Time) bool {
	year, month, day, ok := dateFields(raw)
	if !ok {
		return false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return date.After(today)
}

func dateFields(raw string) (year, month, day int, ok bool) {
	if len(raw) != 10 || raw[4] != '-' || raw[7] != '-' {
		return 0, 0, 0, false
	}

	year, ok = dateField(raw[:4])
	if !ok {
		return 0, 0, 0, false
	}

	month, ok = dateField(raw[5:7])
	if !ok || month < 1 || month > 12 {
		return 0, 0, 0, false
	}

	day, ok = dateField(raw[8:])
	if !ok || day < 1 || day > 31 {
		return 0, 0, 0, false
	}

	return year, month, day, true
}

func dateField(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return value, true
}
