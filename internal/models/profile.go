package models

import "time"

// ProfileUpdate carries profile fields for create and partial-update
// operations. Nil fields are absent: on update the stored value is kept
// (server-side COALESCE), on create the column stays NULL.
type ProfileUpdate struct {
	Interests          []string   // nil = absent, empty slice = explicit empty
	Furnishing         *string    //
	Budget             *string    //
	PreferredLocations []string   //
	BirthDate          *time.Time // calendar date, no time component
}

// HasAnyField reports whether any stored profile field is already populated.
// Used to block repeated profile creation.
func (u *UserDB) HasAnyField() bool {
	return len(u.Interests) > 0 ||
		u.Budget.Valid ||
		u.Furnishing.Valid ||
		len(u.PreferredLocations) > 0 ||
		u.BirthDate.Valid
}
