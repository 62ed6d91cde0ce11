package models

// GoogleClaims is the verified claim set extracted from a Google ID token.
// Email and Sub are always present; the name parts are optional.
type GoogleClaims struct {
	Sub        string  // Stable Google subject identifier
	Email      string  // Verified email
	GivenName  *string // given_name claim, nil when absent
	FamilyName *string // family_name claim, nil when absent
}
