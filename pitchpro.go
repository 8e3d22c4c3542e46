// Package pitchpro is the identity-role resolution and cross-schema
// reconciliation core of the PitchPro job board. It decides whether an
// authenticated account is a job seeker or a recruiter when the stored
// record is ambiguous, inconsistently named or bilingual, and it assembles
// the dashboard view out of independently evolved collections with graceful
// per-source fallback.
//
// The package is a library consumed in-process. It owns no wire protocol and
// no UI: callers inject a document-store client and a session provider, and
// consume the resolved role and the dashboard bundle.
package pitchpro

import (
	"context"
	"log/slog"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/dashboard"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/role"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/session"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// Re-exported core types. The internal packages carry the implementation;
// these aliases are the public surface.
type (
	// Principal is the authenticated identity from the session provider.
	Principal = types.Principal
	// CanonicalRole is the normalized account role.
	CanonicalRole = types.CanonicalRole
	// Account is the canonical account entity.
	Account = types.Account
	// DashboardBundle is the aggregate handed to the presentation layer.
	DashboardBundle = types.DashboardBundle
	// SourceFailure records one entity set that could not be loaded.
	SourceFailure = types.SourceFailure
	// RawRecord is the untyped document shape crossing the store boundary.
	RawRecord = record.RawRecord
	// StoreClient is the document-store capability the core consumes.
	StoreClient = store.Client
	// SessionProvider yields the current principal and its account record.
	SessionProvider = session.Provider
)

// Role values.
const (
	RoleJobSeeker = types.RoleJobSeeker
	RoleRecruiter = types.RoleRecruiter
)

// ResolveRole determines the canonical role of an account record, using the
// optional session hint as a mid-priority signal. Pure, deterministic and
// total: a zero record and an empty hint still resolve, to the documented
// job-seeker default.
func ResolveRole(rec RawRecord, sessionHint string) CanonicalRole {
	return role.Resolve(rec, sessionHint)
}

// Core binds the reconciliation logic to one injected store client.
type Core struct {
	agg *dashboard.Aggregator
}

// Option configures a Core.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	enrichLimit int
}

// WithLogger sets the logger for non-fatal diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithEnrichLimit bounds concurrent favorite-target lookups (default 20).
func WithEnrichLimit(n int) Option {
	return func(o *options) { o.enrichLimit = n }
}

// New builds a Core reading through client.
func New(client StoreClient, opts ...Option) *Core {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	aggOpts := []dashboard.Option{}
	if o.logger != nil {
		aggOpts = append(aggOpts, dashboard.WithLogger(o.logger))
	}
	if o.enrichLimit > 0 {
		aggOpts = append(aggOpts, dashboard.WithEnrichLimit(o.enrichLimit))
	}
	return &Core{agg: dashboard.New(client, aggOpts...)}
}

// ResolveRole fetches the principal's account record and resolves its role.
// A missing or unreadable record degrades to resolution over an absent
// record; the call never fails.
func (c *Core) ResolveRole(ctx context.Context, principalID, sessionHint string) CanonicalRole {
	return c.agg.ResolveRole(ctx, principalID, sessionHint)
}

// BuildDashboard assembles the dashboard bundle for the principal under the
// given role. The bundle comes back unconditionally: failed sections are
// empty slices with a matching PartialFailures entry.
func (c *Core) BuildDashboard(ctx context.Context, principal Principal, accountRole CanonicalRole) *DashboardBundle {
	return c.agg.Build(ctx, principal, accountRole)
}

// BuildFor resolves the session's principal and role, then builds the
// dashboard. Returns nil when no one is signed in.
func (c *Core) BuildFor(ctx context.Context, provider SessionProvider) *DashboardBundle {
	principal := provider.CurrentPrincipal()
	if principal == nil {
		return nil
	}
	rec, err := provider.AccountRecord(ctx, principal.ID)
	if err != nil {
		rec = RawRecord{}
	}
	accountRole := role.Resolve(rec, provider.RoleHint())
	return c.agg.Build(ctx, *principal, accountRole)
}
