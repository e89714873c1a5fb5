package models

import "time"

// Profile is a single matrimonial profile as returned by the PremBandhan API.
//
// Profiles are created and owned by the server; the client never creates or
// deletes them. The only client-side mutation is flipping [Profile.IsLiked]
// after a confirmed like response.
//
// Several fields are optional and present only in some retrieval modes: the
// public listing omits DateOfBirth, Occupation, Gotra, Manglik, State and
// District, while the authenticated search endpoint returns them. Optional
// fields are modelled as pointers so that "absent" is distinguishable from a
// zero value — consumers must treat nil as unknown, never substitute a
// default (an absent birth date must not become age 0 in a range predicate).
type Profile struct {
	// ID is the server-assigned numeric identifier.
	ID int64 `json:"id"`

	// Name is the display name of the profile.
	Name string `json:"name"`

	// Gender is the canonical MALE/FEMALE token.
	Gender string `json:"gender"`

	// DateOfBirth is the ISO date string (YYYY-MM-DD). Absent in the public
	// listing mode.
	DateOfBirth *string `json:"dateOfBirth,omitempty"`

	Caste     string `json:"caste"`
	Religion  string `json:"religion"`
	Education string `json:"education"`
	Income    string `json:"income"`

	// Occupation is absent in the public listing mode.
	Occupation *string `json:"occupation,omitempty"`

	// Gotra is an astrological lineage attribute carried opaquely.
	Gotra *string `json:"gotra,omitempty"`

	// Manglik is an astrological attribute carried opaquely.
	Manglik *string `json:"manglik,omitempty"`

	// Height in centimetres. A present zero is a valid measurement and is
	// distinct from an absent value.
	Height *float64 `json:"height,omitempty"`

	// Weight in kilograms. Same presence semantics as Height.
	Weight *float64 `json:"weight,omitempty"`

	State    *string `json:"state,omitempty"`
	District *string `json:"district,omitempty"`

	MaritalStatus string `json:"maritalStatus,omitempty"`

	// Featured marks profiles flagged by the server for promotional
	// placement.
	Featured bool `json:"featured"`

	// IsLiked is relative to the viewing user. False for anonymous viewers.
	IsLiked bool `json:"isLiked"`

	// Images is the ordered image set; a complete profile has at least one.
	Images []ProfileImage `json:"images"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ProfileImage is a single hosted profile image.
type ProfileImage struct {
	URL string `json:"url"`
}

// PrimaryImageURL returns the URL of the first image, or "" when the profile
// has no images yet.
func (p Profile) PrimaryImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
