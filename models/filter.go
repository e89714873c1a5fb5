// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FilterState is the flat browse/search criteria record.
//
// An empty string or false value always means "no constraint on this field",
// never "match only profiles whose field is empty". AgeFrom/AgeTo are the UI
// names of the wire parameters minAge/maxAge; the query codec in
// internal/filter performs the rename.
type FilterState struct {
	// Search marks server-side filtered search mode, as opposed to the
	// unfiltered public listing mode.
	Search bool

	Gender    string
	AgeFrom   string
	AgeTo     string
	Caste     string
	Religion  string
	Education string
	Income    string
	State     string
	District  string
	MinHeight string
	MaxHeight string
	MinWeight string
	MaxWeight string

	// Featured restricts results to promoted profiles when true.
	Featured bool

	// Occupation is matched client-side only: the search endpoint has no
	// occupation parameter, so it never appears in the query string.
	Occupation string

	// Term is the free-text search applied client-side only; the API has no
	// free-text endpoint.
	Term string
}

// Clear resets every criterion including the search flag. A cleared state
// encodes to an empty query string, which on reload re-enters listing mode.
func (f *FilterState) Clear() {
	*f = FilterState{}
}

// IsZero reports whether no criterion is set. Term and the Search flag count:
// a state that only carries search=true is not zero.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

// HasCriteria reports whether any server-side filter field is set, ignoring
// the Search flag and the client-side-only Term and Occupation.
func (f FilterState) HasCriteria() bool {
	stripped := f
	stripped.Search = false
	stripped.Term = ""
	stripped.Occupation = ""
	return stripped != FilterState{}
}

// Active counts the set criteria, the free-text term included.
func (f FilterState) Active() int {
	count := 0
	for _, v := range []string{
		f.Gender, f.AgeFrom, f.AgeTo, f.Caste, f.Religion, f.Education,
		f.Income, f.State, f.District,
		f.MinHeight, f.MaxHeight, f.MinWeight, f.MaxWeight,
		f.Occupation, f.Term,
	} {
		if v != "" {
			count++
		}
	}
	if f.Featured {
		count++
	}
	return count
}
