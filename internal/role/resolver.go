// Package role resolves the canonical role of an account from whatever
// signal the stored record happens to carry. Legacy records name the role
// under different keys and in two languages; some carry no role at all and
// only betray it structurally. Resolution is pure, deterministic and total:
// it always terminates in a role, never errors.
package role

import (
	"strings"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// roleSynonyms maps every known spelling of a role (legacy, bilingual,
// case-variant) to its canonical value. Lookup is done on the lowercased,
// trimmed word.
var roleSynonyms = map[string]types.CanonicalRole{
	"werkzoekende": types.RoleJobSeeker,
	"jobseeker":    types.RoleJobSeeker,
	"job seeker":   types.RoleJobSeeker,
	"job-seeker":   types.RoleJobSeeker,
	"kandidaat":    types.RoleJobSeeker,
	"recruiter":    types.RoleRecruiter,
	"werkgever":    types.RoleRecruiter,
	"employer":     types.RoleRecruiter,
}

// Normalize maps one free-form role word to a canonical role.
func Normalize(word string) (types.CanonicalRole, bool) {
	r, ok := roleSynonyms[strings.ToLower(strings.TrimSpace(word))]
	return r, ok
}

// Rule is one step of the resolution chain: a named predicate that either
// yields a role or passes. Rules are evaluated strictly in declared order and
// the first match wins, which makes the precedence a testable data structure
// instead of control flow.
type Rule struct {
	Name  string
	Match func(rec record.RawRecord, hint string) (types.CanonicalRole, bool)
}

// DefaultRole is what an account with no role signal at all resolves to.
// Falling back to job seeker mirrors the historical behavior of the
// dashboard; it is a product decision, not an engineering one, and is pinned
// provisionally by the tests.
const DefaultRole = types.RoleJobSeeker

// jobSeekerArrayMarkers are fields whose presence as a non-empty array only
// ever occurs on job-seeker records. A cv field of any shape counts too; that
// check lives in the rule itself.
var jobSeekerArrayMarkers = []string{
	"werkervaring", "experience", "workHistory",
	"vaardigheden", "skills",
	"opleidingen", "opleiding", "education",
}

// recruiterMarkers are fields that only recruiter records carry, at any
// nesting depth.
var recruiterMarkers = []string{
	"bedrijfsnaam", "companyName", "company_name",
	"kvkNummer", "kvk", "kvkNumber",
	"bedrijfsomschrijving", "companyDescription",
}

// Chain is the resolution order. Do not reorder: which signal wins over
// which is part of the observable contract.
var Chain = []Rule{
	{Name: "userType", Match: fieldRule("userType")},
	{Name: "role", Match: fieldRule("role")},
	{Name: "profile.userType", Match: fieldRule("profile.userType")},
	{Name: "sessionHint", Match: func(_ record.RawRecord, hint string) (types.CanonicalRole, bool) {
		if hint == "" {
			return "", false
		}
		return Normalize(hint)
	}},
	{Name: "jobSeekerMarkers", Match: func(rec record.RawRecord, _ string) (types.CanonicalRole, bool) {
		if rec.Has("cv") {
			return types.RoleJobSeeker, true
		}
		for _, key := range jobSeekerArrayMarkers {
			if arr, ok := rec.Slice(key); ok && len(arr) > 0 {
				return types.RoleJobSeeker, true
			}
		}
		return "", false
	}},
	{Name: "recruiterMarkers", Match: func(rec record.RawRecord, _ string) (types.CanonicalRole, bool) {
		for _, key := range recruiterMarkers {
			if _, ok := rec.FindDeep(key); ok {
				return types.RoleRecruiter, true
			}
		}
		return "", false
	}},
	{Name: "default", Match: func(_ record.RawRecord, _ string) (types.CanonicalRole, bool) {
		return DefaultRole, true
	}},
}

func fieldRule(key string) func(record.RawRecord, string) (types.CanonicalRole, bool) {
	return func(rec record.RawRecord, _ string) (types.CanonicalRole, bool) {
		s, ok := rec.String(key)
		if !ok {
			return "", false
		}
		return Normalize(s)
	}
}

// Resolve runs the chain over the record and optional session hint. A nil
// record (account document missing entirely) is a valid input and resolves
// through the hint and default steps.
func Resolve(rec record.RawRecord, hint string) types.CanonicalRole {
	r, _ := ResolveWithRule(rec, hint)
	return r
}

// ResolveWithRule resolves the role and reports which rule decided it.
func ResolveWithRule(rec record.RawRecord, hint string) (types.CanonicalRole, string) {
	for _, rule := range Chain {
		if r, ok := rule.Match(rec, hint); ok {
			return r, rule.Name
		}
	}
	// The chain is total; the default rule always matches.
	return DefaultRole, "default"
}
