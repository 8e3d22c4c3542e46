// Package dashboard assembles the role-specific dashboard bundle out of
// whichever legacy collections a deployment happens to populate.
package dashboard

import (
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/fallback"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// Entity set names used in provenance and failure reporting.
const (
	setAccount      = "account"
	setPostings     = "postings"
	setApplications = "applications"
	setMeetings     = "meetings"
	setFavorites    = "favorites"
)

// Legacy collection names per entity set, in fallback order. The first name
// is the current schema; the rest are what older installations still use.
// Order is contractual: it decides which schema wins when several are
// populated.
var (
	accountCollections  = []string{"users", "accounts", "gebruikers"}
	jobCollections      = []string{"jobs", "posts", "vacatures"}
	applicationCollections = []string{"applications", "sollicitaties", "submissions"}
	meetingCollections  = []string{"meetings", "afspraken", "calendar-events"}
	favoriteCollections = []string{"favorites", "favorieten", "saved"}
)

// defaultListLimit bounds unscoped listings (a job seeker's postings feed).
const defaultListLimit = 25

// ownerChain builds the cross product of collection names and the legacy
// spellings of the owning-id field, scoped to one principal. Collections
// cycle in the outer position so the newest schema is tried across all its
// field spellings before any older collection.
func ownerChain(collections, ownerFields []string, ownerID string) []fallback.Candidate {
	candidates := make([]fallback.Candidate, 0, len(collections)*len(ownerFields))
	for _, collection := range collections {
		for _, field := range ownerFields {
			candidates = append(candidates, fallback.Candidate{
				Collection: collection,
				Query: store.Query{
					Filters: []store.Filter{{Field: field, Op: store.OpEqual, Value: ownerID}},
				},
			})
		}
	}
	return candidates
}

// postingCandidates lists job postings: a recruiter sees their own postings,
// a job seeker sees the newest open feed.
func postingCandidates(role types.CanonicalRole, principalID string) []fallback.Candidate {
	if role == types.RoleRecruiter {
		return ownerChain(jobCollections, []string{"recruiterId", "werkgeverId", "employerId", "ownerId"}, principalID)
	}
	candidates := make([]fallback.Candidate, 0, len(jobCollections))
	for _, collection := range jobCollections {
		candidates = append(candidates, fallback.Candidate{
			Collection: collection,
			Query: store.Query{
				OrderBy: &store.Order{Field: "createdAt", Direction: store.Descending},
				Limit:   defaultListLimit,
			},
		})
	}
	return candidates
}

func applicationCandidates(role types.CanonicalRole, principalID string) []fallback.Candidate {
	if role == types.RoleRecruiter {
		return ownerChain(applicationCollections, []string{"recruiterId", "werkgeverId", "employerId"}, principalID)
	}
	return ownerChain(applicationCollections, []string{"applicantId", "sollicitantId", "werkzoekendeId", "userId"}, principalID)
}

func meetingCandidates(role types.CanonicalRole, principalID string) []fallback.Candidate {
	if role == types.RoleRecruiter {
		return ownerChain(meetingCollections, []string{"recruiterId", "werkgeverId", "organizerId"}, principalID)
	}
	return ownerChain(meetingCollections, []string{"kandidaatId", "participantId", "deelnemerId", "userId"}, principalID)
}

func favoriteCandidates(principalID string) []fallback.Candidate {
	return ownerChain(favoriteCollections, []string{"ownerId", "userId", "eigenaarId"}, principalID)
}
