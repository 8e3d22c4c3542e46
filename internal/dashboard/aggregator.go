package dashboard

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/fallback"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/normalize"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/role"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// DefaultEnrichLimit bounds how many favorite-target lookups run at once.
const DefaultEnrichLimit = 20

// Aggregator builds dashboard bundles against an injected store client. It
// holds no mutable state; one value serves any number of concurrent loads.
type Aggregator struct {
	client      store.Client
	logger      *slog.Logger
	enrichLimit int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger used for non-fatal diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) { a.logger = logger }
}

// WithEnrichLimit overrides the favorite-enrichment concurrency bound.
func WithEnrichLimit(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.enrichLimit = n
		}
	}
}

// New returns an Aggregator reading through client.
func New(client store.Client, opts ...Option) *Aggregator {
	a := &Aggregator{
		client:      client,
		logger:      slog.Default(),
		enrichLimit: DefaultEnrichLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Build assembles the dashboard for one principal. The four entity-set
// fetches run concurrently and independently: one failing source becomes a
// PartialFailures entry, never an error for its siblings. A bundle is
// returned unconditionally, with every slice non-nil.
func (a *Aggregator) Build(ctx context.Context, principal types.Principal, accountRole types.CanonicalRole) *types.DashboardBundle {
	bundle := types.NewDashboardBundle()

	var (
		g        errgroup.Group
		mu       sync.Mutex
		failures []types.SourceFailure
	)
	fail := func(f *types.SourceFailure) {
		if f == nil {
			return
		}
		mu.Lock()
		failures = append(failures, *f)
		mu.Unlock()
		a.logger.Warn("dashboard source failed",
			"entity_set", f.EntitySet, "kind", string(f.Kind), "attempted", f.Attempted)
	}

	g.Go(func() error {
		bundle.Account = a.loadAccount(ctx, principal, accountRole, fail)
		return nil
	})
	g.Go(func() error {
		result, failure := fallback.Fetch(ctx, a.client, setPostings,
			postingCandidates(accountRole, principal.ID), normalize.Job)
		if failure != nil {
			fail(failure)
			return nil
		}
		bundle.Postings = tagged(result.Items, result.Source, func(p *types.JobPosting, src string) {
			p.SourceCollection = src
		})
		return nil
	})
	g.Go(func() error {
		result, failure := fallback.Fetch(ctx, a.client, setApplications,
			applicationCandidates(accountRole, principal.ID), normalize.Application)
		if failure != nil {
			fail(failure)
			return nil
		}
		bundle.Applications = tagged(result.Items, result.Source, func(app *types.Application, src string) {
			app.SourceCollection = src
		})
		return nil
	})
	g.Go(func() error {
		result, failure := fallback.Fetch(ctx, a.client, setMeetings,
			meetingCandidates(accountRole, principal.ID), normalize.Meeting)
		if failure != nil {
			fail(failure)
			return nil
		}
		bundle.Meetings = tagged(result.Items, result.Source, func(m *types.Meeting, src string) {
			m.SourceCollection = src
		})
		return nil
	})
	g.Go(func() error {
		result, failure := fallback.Fetch(ctx, a.client, setFavorites,
			favoriteCandidates(principal.ID), normalize.Favorite)
		if failure != nil {
			fail(failure)
			return nil
		}
		favorites := tagged(result.Items, result.Source, func(f *types.FavoriteEntry, src string) {
			f.SourceCollection = src
		})
		bundle.Favorites = a.enrichFavorites(ctx, favorites)
		return nil
	})

	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	// An exhausted chain with no underlying error means "no data", which the
	// presentation layer does not need to distinguish from a legitimately
	// empty section. Everything else is surfaced.
	for _, f := range failures {
		if f.Kind == types.FailureExhausted && f.LastError == "" {
			continue
		}
		bundle.PartialFailures = append(bundle.PartialFailures, f)
	}
	sort.Slice(bundle.PartialFailures, func(i, j int) bool {
		return bundle.PartialFailures[i].EntitySet < bundle.PartialFailures[j].EntitySet
	})
	return bundle
}

// loadAccount fetches and normalizes the principal's account record. When no
// collection yields it, the bundle still carries a minimal account assembled
// from the session principal.
func (a *Aggregator) loadAccount(ctx context.Context, principal types.Principal, accountRole types.CanonicalRole, fail func(*types.SourceFailure)) *types.Account {
	rec, _, err := fallback.Get(ctx, a.client, accountCollections, principal.ID)
	if err == nil {
		if acct, normErr := normalize.Account(rec, accountRole); normErr == nil {
			return acct
		}
	}
	if err != nil && !store.IsNotFound(err) {
		kind := types.FailureUnavailable
		switch {
		case ctx.Err() != nil:
			kind = types.FailureCancelled
		case store.KindOf(err) == store.KindPermissionDenied:
			kind = types.FailurePermissionDenied
		}
		fail(&types.SourceFailure{
			EntitySet: setAccount,
			Kind:      kind,
			Attempted: accountCollections,
			LastError: err.Error(),
		})
	}
	acct := &types.Account{
		ID:          principal.ID,
		Email:       principal.Email,
		DisplayName: principal.DisplayName,
		Role:        accountRole,
	}
	if accountRole == types.RoleRecruiter {
		acct.Recruiter = &types.RecruiterProfile{}
	} else {
		acct.JobSeeker = &types.JobSeekerProfile{
			Skills:     []string{},
			Experience: []types.ExperienceEntry{},
			Education:  []types.EducationEntry{},
		}
	}
	return acct
}

// tagged stamps the provenance collection onto every item of a result.
func tagged[T any](items []T, source string, stamp func(*T, string)) []T {
	for i := range items {
		stamp(&items[i], source)
	}
	return items
}

// ResolveAccountRecord fetches the principal's raw account record through the
// account collection chain. Exposed for the role-resolution entry point; a
// missing record comes back as a zero RawRecord without error, since role
// resolution is total over absent records.
func (a *Aggregator) ResolveAccountRecord(ctx context.Context, principalID string) (record.RawRecord, error) {
	rec, _, err := fallback.Get(ctx, a.client, accountCollections, principalID)
	if err != nil {
		if store.IsNotFound(err) {
			return record.RawRecord{}, nil
		}
		return record.RawRecord{}, err
	}
	return rec, nil
}

// ResolveRole fetches the account record and resolves its canonical role.
// Store failures degrade to resolution over an absent record rather than
// erroring: the dashboard must load either way.
func (a *Aggregator) ResolveRole(ctx context.Context, principalID, sessionHint string) types.CanonicalRole {
	rec, err := a.ResolveAccountRecord(ctx, principalID)
	if err != nil {
		a.logger.Warn("account record unavailable for role resolution",
			"principal", principalID, "error", err)
		rec = record.RawRecord{}
	}
	return role.Resolve(rec, sessionHint)
}
