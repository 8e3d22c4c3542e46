package types

import "time"

// Principal is the authenticated identity supplied by the session provider.
// It is immutable for the lifetime of a session; only ID is guaranteed.
type Principal struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// Address holds the nested address sub-structure. Legacy records store these
// as flat top-level fields (straat, postcode, ...); normalization lifts them
// in here.
type Address struct {
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"house_number,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}

// ExperienceEntry is one work-history item on a job-seeker profile.
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// EducationEntry is one education item on a job-seeker profile.
type EducationEntry struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// JobSeekerProfile holds the fields only meaningful for job-seeker accounts.
type JobSeekerProfile struct {
	Skills       []string          `json:"skills"`
	Availability string            `json:"availability,omitempty"`
	CV           string            `json:"cv,omitempty"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
}

// RecruiterProfile holds the fields only meaningful for recruiter accounts.
type RecruiterProfile struct {
	CompanyName    string `json:"company_name,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	Position       string `json:"position,omitempty"`
	KvkNumber      string `json:"kvk_number,omitempty"`
}

// Account is the canonical account entity. Exactly one of JobSeeker/Recruiter
// is non-nil, and it always matches Role. Accounts are constructed once per
// dashboard load and never mutated in place.
type Account struct {
	ID          string            `json:"id"`
	Email       string            `json:"email,omitempty"`
	Role        CanonicalRole     `json:"role"`
	DisplayName string            `json:"display_name,omitempty"`
	JobSeeker   *JobSeekerProfile `json:"job_seeker,omitempty"`
	Recruiter   *RecruiterProfile `json:"recruiter,omitempty"`
	Address     Address           `json:"address"`
	Extra       map[string]any    `json:"extra,omitempty"`
}

// JobPosting is the canonical job entity, reconciled from whichever legacy
// collection (jobs, posts, vacatures) held it.
type JobPosting struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Company          string         `json:"company,omitempty"`
	Location         string         `json:"location,omitempty"`
	Description      string         `json:"description,omitempty"`
	Status           string         `json:"status,omitempty"`
	Salary           string         `json:"salary,omitempty"`
	EmploymentType   string         `json:"employment_type,omitempty"`
	RecruiterID      string         `json:"recruiter_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at,omitempty"`
	SourceCollection string         `json:"source_collection,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// Application is the canonical application entity.
type Application struct {
	ID               string         `json:"id"`
	JobID            string         `json:"job_id,omitempty"`
	JobTitle         string         `json:"job_title,omitempty"`
	ApplicantID      string         `json:"applicant_id,omitempty"`
	Company          string         `json:"company,omitempty"`
	Status           string         `json:"status,omitempty"`
	Motivation       string         `json:"motivation,omitempty"`
	AppliedAt        time.Time      `json:"applied_at,omitempty"`
	SourceCollection string         `json:"source_collection,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// Meeting is the canonical scheduled-meeting entity.
type Meeting struct {
	ID               string         `json:"id"`
	Title            string         `json:"title,omitempty"`
	JobID            string         `json:"job_id,omitempty"`
	ParticipantID    string         `json:"participant_id,omitempty"`
	Location         string         `json:"location,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	Status           string         `json:"status,omitempty"`
	ScheduledAt      time.Time      `json:"scheduled_at,omitempty"`
	SourceCollection string         `json:"source_collection,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// FavoriteKind discriminates what a favorite points at.
type FavoriteKind string

const (
	// FavoriteJob marks a favorite referencing a job posting.
	FavoriteJob FavoriteKind = "job"
	// FavoriteCandidate marks a favorite referencing a job-seeker account.
	FavoriteCandidate FavoriteKind = "candidate"
)

// FavoriteEntry is the canonical favorite entity. TargetID references either
// a job posting or a job-seeker account depending on Kind; TargetName is
// filled by enrichment from the referenced entity.
type FavoriteEntry struct {
	ID               string         `json:"id"`
	OwnerID          string         `json:"owner_id,omitempty"`
	TargetID         string         `json:"target_id"`
	Kind             FavoriteKind   `json:"kind"`
	TargetName       string         `json:"target_name,omitempty"`
	AddedAt          time.Time      `json:"added_at,omitempty"`
	SourceCollection string         `json:"source_collection,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
}
