package filter

import (
	"testing"
	"time"

	"github.com/prembandhan/matchclient/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func sampleProfile() models.Profile {
	return models.Profile{
		ID:          1,
		Name:        "Priya Sharma",
		Gender:      "FEMALE",
		DateOfBirth: strPtr("1998-03-10"),
		Caste:       "Brahmin",
		Religion:    "Hindu",
		Education:   "MBA",
		Income:      "10LPA",
		Occupation:  strPtr("Software Engineer"),
		Height:      floatPtr(162),
		Weight:      floatPtr(54),
		State:       strPtr("Uttar Pradesh"),
		District:    strPtr("Gorakhpur"),
		Featured:    true,
	}
}

// An unset filter field must pass every profile, including profiles whose own
// field is absent.
func TestMatch_EmptyFilterPassesEverything(t *testing.T) {
	profiles := []models.Profile{
		sampleProfile(),
		{ID: 2, Name: "Bare"}, // every optional field absent
	}

	for _, p := range profiles {
		assert.True(t, Match(p, models.FilterState{}, evalNow), "profile %d", p.ID)
	}
}

func TestMatch_AbsentProfileFieldIsNeverExcluded(t *testing.T) {
	bare := models.Profile{ID: 2, Name: "Bare"}

	f := models.FilterState{
		Gender:    "FEMALE",
		Religion:  "hindu",
		State:     "up",
		District:  "gorakhpur",
		AgeFrom:   "21",
		AgeTo:     "30",
		MinHeight: "150",
		MaxWeight: "60",
	}

	assert.True(t, Match(bare, f, evalNow))
}

func TestMatchTerm(t *testing.T) {
	p := sampleProfile()

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"priya", true},     // name
		{"ENGINEER", true},  // occupation
		{"mba", true},       // education
		{"hindu", true},     // religion
		{"brahmin", true},   // caste
		{"doctor", false},
		{"gorakhpur", false}, // district is not a term field
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(p, models.FilterState{Term: tt.term}, evalNow), "term %q", tt.term)
	}
}

func TestMatchTerm_NoOccupation(t *testing.T) {
	p := sampleProfile()
	p.Occupation = nil

	assert.False(t, Match(p, models.FilterState{Term: "engineer"}, evalNow))
	assert.True(t, Match(p, models.FilterState{Term: "priya"}, evalNow))
}

func TestMatch_CaseInsensitiveEquality(t *testing.T) {
	p := sampleProfile()

	assert.True(t, Match(p, models.FilterState{Gender: "female"}, evalNow))
	assert.True(t, Match(p, models.FilterState{Religion: "HINDU"}, evalNow))
	assert.False(t, Match(p, models.FilterState{Religion: "sikh"}, evalNow))
	assert.True(t, Match(p, models.FilterState{State: "uttar pradesh"}, evalNow))
	assert.False(t, Match(p, models.FilterState{State: "bihar"}, evalNow))
}

func TestMatch_DistrictSubstring(t *testing.T) {
	p := sampleProfile()

	assert.True(t, Match(p, models.FilterState{District: "gorakh"}, evalNow))
	assert.False(t, Match(p, models.FilterState{District: "lucknow"}, evalNow))
}

func TestMatch_AgeRange(t *testing.T) {
	p := sampleProfile() // born 1998-03-10 → 26 at evalNow

	assert.True(t, Match(p, models.FilterState{AgeFrom: "21", AgeTo: "30"}, evalNow))
	assert.False(t, Match(p, models.FilterState{AgeTo: "25"}, evalNow))
	assert.False(t, Match(p, models.FilterState{AgeFrom: "27"}, evalNow))
}

func TestMatch_AgeRange_MissingBirthDateIncluded(t *testing.T) {
	p := sampleProfile()
	p.DateOfBirth = nil

	assert.True(t, Match(p, models.FilterState{AgeFrom: "21", AgeTo: "30"}, evalNow))
}

func TestMatch_HeightWeightRange(t *testing.T) {
	p := sampleProfile()

	assert.True(t, Match(p, models.FilterState{MinHeight: "150", MaxHeight: "170"}, evalNow))
	assert.False(t, Match(p, models.FilterState{MinHeight: "165"}, evalNow))
	assert.False(t, Match(p, models.FilterState{MaxWeight: "50"}, evalNow))
}

// A present zero is a valid measurement, distinct from absence: it fails a
// positive minimum instead of being vacuously included.
func TestMatch_ZeroWeightIsAValue(t *testing.T) {
	p := sampleProfile()
	p.Weight = floatPtr(0)

	assert.False(t, Match(p, models.FilterState{MinWeight: "40"}, evalNow))

	p.Weight = nil
	assert.True(t, Match(p, models.FilterState{MinWeight: "40"}, evalNow))
}

func TestMatch_MalformedRangeValueIsUnset(t *testing.T) {
	p := sampleProfile()
	assert.True(t, Match(p, models.FilterState{AgeFrom: "abc"}, evalNow))
}

func TestMatch_Featured(t *testing.T) {
	p := sampleProfile()
	assert.True(t, Match(p, models.FilterState{Featured: true}, evalNow))

	p.Featured = false
	assert.False(t, Match(p, models.FilterState{Featured: true}, evalNow))
	assert.True(t, Match(p, models.FilterState{}, evalNow))
}

func TestApply_Conjunction(t *testing.T) {
	match := sampleProfile()
	rahul := models.Profile{ID: 2, Name: "Rahul Gupta", Gender: "MALE", Religion: "Hindu"}
	other := sampleProfile()
	other.ID = 3
	other.Religion = "Sikh"

	got := Apply([]models.Profile{match, rahul, other}, models.FilterState{
		Gender:   "FEMALE",
		Religion: "hindu",
	}, evalNow)

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApplyLocal_TermOnly(t *testing.T) {
	profiles := []models.Profile{sampleProfile(), {ID: 2, Name: "Rahul Gupta"}}

	got := ApplyLocal(profiles, models.FilterState{Term: "rahul"}, evalNow)

	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestApplyLocal_IgnoresServerSideCriteria(t *testing.T) {
	engineer, doctor := "Engineer", "Doctor"
	profiles := []models.Profile{
		{ID: 1, Name: "Priya Sharma", Gender: "FEMALE", Occupation: &engineer},
		{ID: 2, Name: "Rahul Gupta", Gender: "MALE", Occupation: &doctor},
	}

	// gender is the server's responsibility in search mode; only the
	// occupation filter is applied here
	got := ApplyLocal(profiles, models.FilterState{Gender: "MALE", Occupation: "engineer"}, evalNow)

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
