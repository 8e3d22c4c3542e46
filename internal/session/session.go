// Package session defines the session-provider capability the reconciliation
// core consumes, plus two concrete providers: a static one for tests and
// tooling, and a JWT-claims adapter for callers that carry a signed token.
package session

import (
	"context"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/fallback"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// Provider yields the authenticated principal and its raw account record.
// A nil principal means no one is signed in.
type Provider interface {
	// CurrentPrincipal returns the authenticated principal, or nil.
	CurrentPrincipal() *types.Principal
	// RoleHint returns the role carried through session state, or "". The
	// resolver treats it as a mid-priority signal, after the record's own
	// role fields and before structural markers.
	RoleHint() string
	// AccountRecord fetches the raw account record for a principal id. A
	// missing record is a valid outcome and comes back as a zero RawRecord.
	AccountRecord(ctx context.Context, principalID string) (record.RawRecord, error)
}

// accountCollections mirrors the dashboard's account fallback chain; the
// session layer reads the same documents.
var accountCollections = []string{"users", "accounts", "gebruikers"}

// StoreBacked is a Provider with a fixed principal whose account record is
// read through an injected store client.
type StoreBacked struct {
	Principal *types.Principal
	Hint      string
	Client    store.Client
}

// CurrentPrincipal implements Provider.
func (p *StoreBacked) CurrentPrincipal() *types.Principal {
	return p.Principal
}

// RoleHint implements Provider.
func (p *StoreBacked) RoleHint() string {
	return p.Hint
}

// AccountRecord implements Provider.
func (p *StoreBacked) AccountRecord(ctx context.Context, principalID string) (record.RawRecord, error) {
	rec, _, err := fallback.Get(ctx, p.Client, accountCollections, principalID)
	if err != nil {
		if store.IsNotFound(err) {
			return record.RawRecord{}, nil
		}
		return record.RawRecord{}, err
	}
	return rec, nil
}
