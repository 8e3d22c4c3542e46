package types

// FailureKind classifies why a source could not satisfy a fetch.
type FailureKind string

const (
	// FailurePermissionDenied means the principal cannot read the collection.
	FailurePermissionDenied FailureKind = "permission_denied"
	// FailureUnavailable means the store was transiently unreachable.
	FailureUnavailable FailureKind = "unavailable"
	// FailureExhausted means every candidate succeeded but returned no data.
	FailureExhausted FailureKind = "exhausted"
	// FailureCancelled means the caller withdrew the request mid-flight.
	FailureCancelled FailureKind = "cancelled"
)

// SourceFailure records that one logical entity set could not be loaded.
// Attempted lists every collection tried, in order; LastError carries the
// message of the final store error, empty when all candidates were merely
// empty.
type SourceFailure struct {
	EntitySet string      `json:"entity_set"`
	Kind      FailureKind `json:"kind"`
	Attempted []string    `json:"attempted"`
	LastError string      `json:"last_error,omitempty"`
}

// DashboardBundle is the single aggregate handed to the presentation layer.
// Every slice is non-nil even when every sub-fetch failed; PartialFailures
// tells the caller which sections are empty because of an error rather than
// because there was no data.
type DashboardBundle struct {
	Account         *Account        `json:"account,omitempty"`
	Postings        []JobPosting    `json:"postings"`
	Applications    []Application   `json:"applications"`
	Meetings        []Meeting       `json:"meetings"`
	Favorites       []FavoriteEntry `json:"favorites"`
	PartialFailures []SourceFailure `json:"partial_failures"`
}

// NewDashboardBundle returns an empty bundle with all slices initialized.
func NewDashboardBundle() *DashboardBundle {
	return &DashboardBundle{
		Postings:        []JobPosting{},
		Applications:    []Application{},
		Meetings:        []Meeting{},
		Favorites:       []FavoriteEntry{},
		PartialFailures: []SourceFailure{},
	}
}
