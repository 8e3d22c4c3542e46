// Package types provides the canonical entity definitions shared across the
// PitchPro reconciliation core.
package types

// CanonicalRole is the single normalized role an account resolves to.
// Every account is exactly one of the two; resolution never yields "unknown".
type CanonicalRole string

const (
	// RoleJobSeeker identifies an account looking for work.
	RoleJobSeeker CanonicalRole = "jobseeker"
	// RoleRecruiter identifies an account posting work.
	RoleRecruiter CanonicalRole = "recruiter"
)

// Valid reports whether r is one of the two canonical roles.
func (r CanonicalRole) Valid() bool {
	return r == RoleJobSeeker || r == RoleRecruiter
}

// String returns the wire form of the role.
func (r CanonicalRole) String() string {
	return string(r)
}
