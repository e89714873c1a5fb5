package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/prembandhan/matchclient/models"
)

// Apply returns the subset of profiles matching f at the given moment.
// Order is preserved; the result is always a fresh slice.
func Apply(profiles []models.Profile, f models.FilterState, now time.Time) []models.Profile {
	matched := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if Match(p, f, now) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ApplyLocal applies only the criteria that have no server-side equivalent:
// the free-text term and the occupation filter. Used in search mode, where
// every other predicate has already been applied by the server.
func ApplyLocal(profiles []models.Profile, f models.FilterState, now time.Time) []models.Profile {
	local := models.FilterState{Term: f.Term, Occupation: f.Occupation}
	return Apply(profiles, local, now)
}

// Match evaluates the conjunction of per-field predicates for one profile.
//
// Every predicate is vacuously true when its filter value is unset, and —
// deliberately — when the profile's backing field is absent: optional fields
// are genuinely missing in some retrieval modes, and a profile must never be
// excluded for missing data. A present zero height or weight is a valid
// measurement and is compared normally.
func Match(p models.Profile, f models.FilterState, now time.Time) bool {
	return matchTerm(p, f.Term) &&
		matchEqual(p.Gender, f.Gender) &&
		matchEqual(p.Religion, f.Religion) &&
		matchEqual(p.Education, f.Education) &&
		matchEqual(p.Caste, f.Caste) &&
		matchEqual(p.Income, f.Income) &&
		matchEqualPtr(p.Occupation, f.Occupation) &&
		matchEqualPtr(p.State, f.State) &&
		matchDistrict(p.District, f.District) &&
		matchAge(p.DateOfBirth, f.AgeFrom, f.AgeTo, now) &&
		matchRange(p.Height, f.MinHeight, f.MaxHeight) &&
		matchRange(p.Weight, f.MinWeight, f.MaxWeight) &&
		matchFeatured(p.Featured, f.Featured)
}

// matchTerm is a case-insensitive substring match against name, occupation,
// education, religion and caste: any one containing the term is enough.
func matchTerm(p models.Profile, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	haystacks := []string{p.Name, p.Education, p.Religion, p.Caste}
	if p.Occupation != nil {
		haystacks = append(haystacks, *p.Occupation)
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), term) {
			return true
		}
	}
	return false
}

func matchEqual(field, want string) bool {
	if strings.TrimSpace(want) == "" || strings.TrimSpace(field) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(field), strings.TrimSpace(want))
}

func matchEqualPtr(field *string, want string) bool {
	if field == nil {
		return true
	}
	return matchEqual(*field, want)
}

func matchDistrict(field *string, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" || field == nil {
		return true
	}
	return strings.Contains(strings.ToLower(*field), want)
}

func matchAge(dob *string, from, to string, now time.Time) bool {
	minAge, hasMin := parseNumber(from)
	maxAge, hasMax := parseNumber(to)
	if !hasMin && !hasMax {
		return true
	}

	if dob == nil {
		return true
	}
	age, ok := AgeAt(*dob, now)
	if !ok {
		return true
	}

	if hasMin && float64(age) < minAge {
		return false
	}
	if hasMax && float64(age) > maxAge {
		return false
	}
	return true
}

func matchRange(field *float64, min, max string) bool {
	minVal, hasMin := parseNumber(min)
	maxVal, hasMax := parseNumber(max)
	if !hasMin && !hasMax {
		return true
	}

	if field == nil {
		return true
	}

	if hasMin && *field < minVal {
		return false
	}
	if hasMax && *field > maxVal {
		return false
	}
	return true
}

func matchFeatured(featured, want bool) bool {
	if !want {
		return true
	}
	return featured
}

// parseNumber treats an empty or malformed filter value as unset rather than
// failing the predicate.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
