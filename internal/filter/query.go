package filter

import (
	"net/url"
	"strings"

	"github.com/prembandhan/matchclient/models"
)

// Recognized query keys. Anything else in an incoming query string is
// ignored so that stray tracking parameters cannot poison the state.
const (
	keySearch    = "search"
	keyGender    = "gender"
	keyMinAge    = "minAge"
	keyMaxAge    = "maxAge"
	keyCaste     = "caste"
	keyReligion  = "religion"
	keyEducation = "education"
	keyIncome    = "income"
	keyState     = "state"
	keyDistrict  = "district"
	keyMinHeight = "minHeight"
	keyMaxHeight = "maxHeight"
	keyMinWeight = "minWeight"
	keyMaxWeight = "maxWeight"
	keyFeatured  = "featured"
)

// ParseQuery reads a filter state from a raw query string. Unknown keys are
// ignored, values are whitespace-trimmed, and the wire names minAge/maxAge
// land in the UI fields AgeFrom/AgeTo. A malformed query string yields the
// zero state rather than an error: the view falls back to listing mode.
func ParseQuery(rawQuery string) models.FilterState {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return models.FilterState{}
	}
	return FromValues(values)
}

// FromValues reads a filter state from already-parsed query values.
func FromValues(values url.Values) models.FilterState {
	get := func(key string) string {
		return strings.TrimSpace(values.Get(key))
	}

	return models.FilterState{
		Search:    get(keySearch) == "true",
		Gender:    get(keyGender),
		AgeFrom:   get(keyMinAge),
		AgeTo:     get(keyMaxAge),
		Caste:     get(keyCaste),
		Religion:  get(keyReligion),
		Education: get(keyEducation),
		Income:    get(keyIncome),
		State:     get(keyState),
		District:  get(keyDistrict),
		MinHeight: get(keyMinHeight),
		MaxHeight: get(keyMaxHeight),
		MinWeight: get(keyMinWeight),
		MaxWeight: get(keyMaxWeight),
		Featured:  get(keyFeatured) == "true",
	}
}

// Values serializes f into query values: the inverse of [FromValues].
//
// Empty and false values are omitted entirely, gender is normalized to the
// canonical MALE/FEMALE tokens, and every other free-text value is
// lower-cased for case-insensitive matching on the server. The search flag
// is re-added whenever any filter is active, so a restored link always lands
// in search mode. A fully cleared state serializes to no values at all, so a
// reload re-enters listing mode instead of a degenerate empty search.
func Values(f models.FilterState) url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			values.Set(key, strings.ToLower(value))
		}
	}

	if f.Search || f.HasCriteria() {
		values.Set(keySearch, "true")
	}
	if gender := strings.TrimSpace(f.Gender); gender != "" {
		values.Set(keyGender, strings.ToUpper(gender))
	}
	set(keyMinAge, f.AgeFrom)
	set(keyMaxAge, f.AgeTo)
	set(keyCaste, f.Caste)
	set(keyReligion, f.Religion)
	set(keyEducation, f.Education)
	set(keyIncome, f.Income)
	set(keyState, f.State)
	set(keyDistrict, f.District)
	set(keyMinHeight, f.MinHeight)
	set(keyMaxHeight, f.MaxHeight)
	set(keyMinWeight, f.MinWeight)
	set(keyMaxWeight, f.MaxWeight)
	if f.Featured {
		values.Set(keyFeatured, "true")
	}

	return values
}

// Encode returns the canonical query-string form of f (keys sorted, values
// escaped). Returns "" for a cleared state.
func Encode(f models.FilterState) string {
	return Values(f).Encode()
}

// SearchParams returns the serialization the search endpoint expects: the
// codec output minus the search flag itself.
func SearchParams(f models.FilterState) url.Values {
	values := Values(f)
	values.Del(keySearch)
	return values
}

// ShareLink rebuilds the shareable browse link for f against the given web
// origin. The link is rewritten in place on every filter change, so pasting
// it reproduces the same query; a cleared state yields a bare /browse URL.
func ShareLink(webOrigin string, f models.FilterState) string {
	base := strings.TrimRight(webOrigin, "/") + "/browse"
	if query := Encode(f); query != "" {
		return base + "?" + query
	}
	return base
}
