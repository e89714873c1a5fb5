package models

// ProfileListResponse is the body shape shared by the public listing,
// featured listing and filtered search endpoints.
//
// The API is inconsistent about the records container: some deployments put
// the slice under "profiles", others under "data". The client accepts either;
// use [ProfileListResponse.Records] instead of touching the fields directly.
type ProfileListResponse struct {
	Success  bool      `json:"success"`
	Profiles []Profile `json:"profiles,omitempty"`
	Data     []Profile `json:"data,omitempty"`
}

// Records returns whichever container the server populated, preferring
// "profiles" when both are present. A successful response with zero records
// is a valid empty result, not an error.
func (r ProfileListResponse) Records() []Profile {
	if len(r.Profiles) > 0 {
		return r.Profiles
	}
	return r.Data
}

// ProfileResponse is the body of the single-profile endpoint
// GET /profiles/{id}. The record sits under "user".
type ProfileResponse struct {
	Success bool     `json:"success"`
	User    *Profile `json:"user"`
}
