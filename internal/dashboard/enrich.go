package dashboard

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/fallback"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/normalize"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/role"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// enrichFavorites resolves every favorite's referenced entity with one
// bounded-concurrency lookup per favorite. Data-quality filtering happens
// here, silently: a favorite whose target no longer exists is dropped, and a
// candidate favorite whose referenced account turns out to be a recruiter is
// a miscategorized entry and is dropped too. A lookup failing transiently
// keeps the favorite, just without the enriched display name.
func (a *Aggregator) enrichFavorites(ctx context.Context, favorites []types.FavoriteEntry) []types.FavoriteEntry {
	if len(favorites) == 0 {
		return []types.FavoriteEntry{}
	}

	sem := semaphore.NewWeighted(int64(a.enrichLimit))
	var wg sync.WaitGroup
	keep := make([]bool, len(favorites))
	enriched := make([]types.FavoriteEntry, len(favorites))

	for i, fav := range favorites {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Cancelled: drop the remaining lookups, keep what finished.
			break
		}
		wg.Add(1)
		go func(i int, fav types.FavoriteEntry) {
			defer wg.Done()
			defer sem.Release(1)
			out, ok := a.enrichFavorite(ctx, fav)
			enriched[i] = out
			keep[i] = ok
		}(i, fav)
	}
	wg.Wait()

	result := make([]types.FavoriteEntry, 0, len(favorites))
	for i := range favorites {
		if keep[i] {
			result = append(result, enriched[i])
		}
	}
	return result
}

func (a *Aggregator) enrichFavorite(ctx context.Context, fav types.FavoriteEntry) (types.FavoriteEntry, bool) {
	if fav.TargetID == "" {
		// Nothing to resolve; unusable entry.
		return fav, false
	}

	collections := accountCollections
	if fav.Kind == types.FavoriteJob {
		collections = jobCollections
	}

	rec, _, err := fallback.Get(ctx, a.client, collections, fav.TargetID)
	if err != nil {
		if store.IsNotFound(err) {
			// Dangling reference: the target was deleted. Silent filter.
			return fav, false
		}
		a.logger.Warn("favorite enrichment lookup failed",
			"favorite", fav.ID, "target", fav.TargetID, "error", err)
		return fav, true
	}

	switch fav.Kind {
	case types.FavoriteJob:
		job, err := normalize.Job(rec)
		if err != nil {
			return fav, false
		}
		fav.TargetName = job.Title
	default:
		// Candidate favorites must reference job-seeker accounts; a
		// recruiter target means the entry was miscategorized at write time.
		if role.Resolve(rec, "") == types.RoleRecruiter {
			return fav, false
		}
		acct, err := normalize.Account(rec, types.RoleJobSeeker)
		if err != nil {
			return fav, false
		}
		fav.TargetName = acct.DisplayName
	}
	return fav, true
}
