package analytics

import (
	"context"
	"fmt"
	"time"

	"auction-gateway/internal/auctionerrors"
	model "auction-gateway/internal/models"
	profiles "auction-gateway/internal/profileService"
	"auction-gateway/utils"

	"golang.org/x/sync/errgroup"
)

// FetchLimit is the page size of every dashboard collection
const FetchLimit = 50

// DefaultCredits stands in for an unknown balance on the fallback profile
const DefaultCredits = 1000

// Warnings attached to a degraded dashboard
const (
	WarnProfileForbidden   = "Profile data unavailable due to API access restrictions. Showing default values."
	WarnProfileUnavailable = "Failed to load profile data"
	WarnListings           = "Failed to load user listings"
	WarnBids               = "Failed to load user bids"
	WarnWins               = "Failed to load user wins"
)

// ProfileReader is the slice of the profile service the collector needs
type ProfileReader interface {
	GetProfile(ctx context.Context, name string, inc profiles.ProfileInclude) (model.Profile, error)
	GetListingsByProfile(ctx context.Context, name string, q profiles.ListingsQuery) (model.Envelope[[]model.Listing], error)
	GetBidsByProfile(ctx context.Context, name string, q profiles.BidsQuery) (model.Envelope[[]model.Bid], error)
	GetWinsByProfile(ctx context.Context, name string, q profiles.ListingsQuery) (model.Envelope[[]model.Listing], error)
}

// UserSource yields the cached session user used as fallback profile
type UserSource interface {
	CurrentUser() *model.User
}

// Dashboard is everything the profile page shows
type Dashboard struct {
	Profile        model.Profile   `json:"profile"`
	Listings       []model.Listing `json:"listings"`
	Bids           []model.Bid     `json:"bids"`
	Wins           []model.Listing `json:"wins"`
	Metrics        Metrics         `json:"metrics"`
	RecentActivity []Event         `json:"recentActivity"`
	Degraded       bool            `json:"degraded"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// Collector gathers dashboard inputs concurrently
type Collector struct {
	profiles ProfileReader
	users    UserSource
	now      func() time.Time
}

// NewCollector creates a Collector. users may be nil when no session exists.
func NewCollector(p ProfileReader, users UserSource) *Collector {
	return &Collector{profiles: p, users: users, now: time.Now}
}

// Collect fetches profile, listings, bids and wins concurrently. Only the
// profile is required, and even it falls back to the session user when the
// name matches. The other three degrade to empty with a warning.
func (c *Collector) Collect(ctx context.Context, name string) (Dashboard, error) {
	var (
		profile    model.Profile
		profileErr error
		listings   []model.Listing
		bids       []model.Bid
		wins       []model.Listing
		warnings   = make([]string, 4)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, profileErr = c.profiles.GetProfile(gctx, name, profiles.ProfileInclude{Listings: true, Wins: true})
		return interrupted(ctx, profileErr)
	})
	g.Go(func() error {
		resp, err := c.profiles.GetListingsByProfile(gctx, name, profiles.ListingsQuery{Limit: FetchLimit, Seller: true, Bids: true})
		if err != nil {
			if cerr := interrupted(ctx, err); cerr != nil {
				return cerr
			}
			warnings[1] = secondaryFailure(WarnListings, name, err)
			return nil
		}
		listings = resp.Data
		return nil
	})
	g.Go(func() error {
		resp, err := c.profiles.GetBidsByProfile(gctx, name, profiles.BidsQuery{Limit: FetchLimit, Listings: true})
		if err != nil {
			if cerr := interrupted(ctx, err); cerr != nil {
				return cerr
			}
			warnings[2] = secondaryFailure(WarnBids, name, err)
			return nil
		}
		bids = resp.Data
		return nil
	})
	g.Go(func() error {
		resp, err := c.profiles.GetWinsByProfile(gctx, name, profiles.ListingsQuery{Limit: FetchLimit, Seller: true, Bids: true})
		if err != nil {
			if cerr := interrupted(ctx, err); cerr != nil {
				return cerr
			}
			warnings[3] = secondaryFailure(WarnWins, name, err)
			return nil
		}
		wins = resp.Data
		return nil
	})
	// only caller cancellation fails the group; upstream errors degrade
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	dash := Dashboard{
		Profile:  profile,
		Listings: nonNil(listings),
		Bids:     nonNil(bids),
		Wins:     nonNil(wins),
	}

	if profileErr != nil {
		fallback, ok := c.fallbackProfile(name)
		if !ok {
			return Dashboard{}, fmt.Errorf("analytics: load profile %s: %w", name, profileErr)
		}
		dash.Profile = fallback
		dash.Degraded = true
		if auctionerrors.IsForbidden(profileErr) {
			warnings[0] = WarnProfileForbidden
			utils.Warn("analytics: profile API access forbidden, likely a missing API key; using session data", map[string]any{"name": name})
		} else {
			warnings[0] = WarnProfileUnavailable
			utils.Warn("analytics: failed to load profile, using session data", map[string]any{"name": name, "error": profileErr.Error()})
		}
	}

	for _, w := range warnings {
		if w != "" {
			dash.Warnings = append(dash.Warnings, w)
		}
	}
	if len(dash.Warnings) > 0 {
		dash.Degraded = true
	}

	activity := Activity{Listings: dash.Listings, Bids: dash.Bids, Wins: dash.Wins}
	dash.Metrics = Summarize(activity, c.now())
	dash.RecentActivity = RecentActivity(activity)
	return dash, nil
}

// fallbackProfile builds a profile from the cached session user
func (c *Collector) fallbackProfile(name string) (model.Profile, bool) {
	if c.users == nil {
		return model.Profile{}, false
	}
	user := c.users.CurrentUser()
	if user == nil || user.Name != name {
		return model.Profile{}, false
	}

	credits := user.Credits
	if credits == 0 {
		credits = DefaultCredits
	}
	return model.Profile{
		Name:    user.Name,
		Email:   user.Email,
		Bio:     user.Bio,
		Avatar:  user.Avatar,
		Banner:  user.Banner,
		Credits: credits,
		Count:   &model.ProfileCount{},
	}, true
}

// interrupted reports the caller's cancellation when a fetch failed because of it
func interrupted(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	return ctx.Err()
}

func secondaryFailure(warning, name string, err error) string {
	utils.Warn("analytics: "+warning, map[string]any{"name": name, "error": err.Error()})
	return warning
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
