package filter

import "time"

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// AgeAt computes the whole-year age for an ISO date-of-birth string at the
// given moment, subtracting one year when the month/day has not yet been
// reached. The second return is false when dob is empty or unparsable, so a
// missing birth date propagates as "unknown" instead of collapsing to 0.
func AgeAt(dob string, now time.Time) (int, bool) {
	if dob == "" {
		return 0, false
	}

	var birth time.Time
	var err error
	for _, layout := range dateLayouts {
		if birth, err = time.Parse(layout, dob); err == nil {
			break
		}
	}
	if err != nil {
		return 0, false
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}

	return age, true
}
