package analytics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"auction-gateway/internal/auctionerrors"
	model "auction-gateway/internal/models"
	profiles "auction-gateway/internal/profileService"

	"github.com/stretchr/testify/require"
)

// stubProfiles answers each collection with fixed data or an error
type stubProfiles struct {
	profile     model.Profile
	profileErr  error
	listings    []model.Listing
	listingsErr error
	bids        []model.Bid
	bidsErr     error
	wins        []model.Listing
	winsErr     error
	delay       time.Duration
}

func (s *stubProfiles) wait(ctx context.Context) error {
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *stubProfiles) GetProfile(ctx context.Context, _ string, inc profiles.ProfileInclude) (model.Profile, error) {
	if err := s.wait(ctx); err != nil {
		return model.Profile{}, err
	}
	if !inc.Listings || !inc.Wins {
		return model.Profile{}, errors.New("profile fetched without its collections")
	}
	return s.profile, s.profileErr
}

func (s *stubProfiles) GetListingsByProfile(ctx context.Context, _ string, q profiles.ListingsQuery) (model.Envelope[[]model.Listing], error) {
	if err := s.wait(ctx); err != nil {
		return model.Envelope[[]model.Listing]{}, err
	}
	if q.Limit != FetchLimit {
		return model.Envelope[[]model.Listing]{}, errors.New("unexpected limit")
	}
	return model.Envelope[[]model.Listing]{Data: s.listings}, s.listingsErr
}

func (s *stubProfiles) GetBidsByProfile(ctx context.Context, _ string, q profiles.BidsQuery) (model.Envelope[[]model.Bid], error) {
	if err := s.wait(ctx); err != nil {
		return model.Envelope[[]model.Bid]{}, err
	}
	if !q.Listings {
		return model.Envelope[[]model.Bid]{}, errors.New("bids fetched without listings")
	}
	return model.Envelope[[]model.Bid]{Data: s.bids}, s.bidsErr
}

func (s *stubProfiles) GetWinsByProfile(ctx context.Context, _ string, _ profiles.ListingsQuery) (model.Envelope[[]model.Listing], error) {
	if err := s.wait(ctx); err != nil {
		return model.Envelope[[]model.Listing]{}, err
	}
	return model.Envelope[[]model.Listing]{Data: s.wins}, s.winsErr
}

type stubUser struct{ user *model.User }

func (s stubUser) CurrentUser() *model.User { return s.user }

func newCollector(p ProfileReader, u UserSource) *Collector {
	c := NewCollector(p, u)
	c.now = func() time.Time { return now }
	return c
}

var forbidden = &auctionerrors.APIError{StatusCode: http.StatusForbidden, Errors: []auctionerrors.ErrorDetail{{Message: "Forbidden"}}}

// Test the full dashboard when every call succeeds
func TestCollector_AllSucceed(t *testing.T) {
	t.Parallel()

	stub := &stubProfiles{
		profile:  model.Profile{Name: "alice", Credits: 800},
		listings: []model.Listing{listing("l1", now.Add(-time.Hour), now.Add(time.Hour), 2)},
		bids:     []model.Bid{bidOn("A", 10, now), bidOn("B", 20, now), bidOn("C", 30, now)},
		wins:     []model.Listing{{ID: "A"}, {ID: "B"}},
	}

	dash, err := newCollector(stub, nil).Collect(context.Background(), "alice")
	require.NoError(t, err)
	require.False(t, dash.Degraded)
	require.Empty(t, dash.Warnings)
	require.Equal(t, 800, dash.Profile.Credits)
	require.Equal(t, 67, dash.Metrics.WinRate)
	require.Equal(t, 1, dash.Metrics.ActiveListings)
	require.Equal(t, 20, dash.Metrics.AverageBidAmount)
	require.Len(t, dash.RecentActivity, 6)
}

// Test each secondary failure is independent and non-fatal
func TestCollector_SecondaryFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		stub         *stubProfiles
		wantWarnings []string
	}{
		{
			name: "listings_fail",
			stub: &stubProfiles{
				profile:     model.Profile{Name: "alice"},
				listingsErr: errors.New("timeout"),
				bids:        []model.Bid{bidOn("A", 10, now)},
				wins:        []model.Listing{{ID: "A"}},
			},
			wantWarnings: []string{WarnListings},
		},
		{
			name: "bids_and_wins_fail",
			stub: &stubProfiles{
				profile:  model.Profile{Name: "alice"},
				listings: []model.Listing{listing("l1", now, now.Add(time.Hour), 1)},
				bidsErr:  forbidden,
				winsErr:  auctionerrors.NewNetworkError(),
			},
			wantWarnings: []string{WarnBids, WarnWins},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dash, err := newCollector(tc.stub, nil).Collect(context.Background(), "alice")
			require.NoError(t, err)
			require.True(t, dash.Degraded)
			require.Equal(t, tc.wantWarnings, dash.Warnings)
			require.Equal(t, "alice", dash.Profile.Name)
			require.NotNil(t, dash.Listings)
			require.NotNil(t, dash.Bids)
			require.NotNil(t, dash.Wins)
		})
	}
}

// Test a failing profile falls back to the session user
func TestCollector_ProfileFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		profileErr  error
		user        *model.User
		wantWarning string
		wantCredits int
	}{
		{
			name:        "forbidden_unknown_credits",
			profileErr:  forbidden,
			user:        &model.User{Name: "alice", Email: "alice@stud.noroff.no"},
			wantWarning: WarnProfileForbidden,
			wantCredits: DefaultCredits,
		},
		{
			name:        "other_error_known_credits",
			profileErr:  errors.New("boom"),
			user:        &model.User{Name: "alice", Credits: 420},
			wantWarning: WarnProfileUnavailable,
			wantCredits: 420,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stub := &stubProfiles{profileErr: tc.profileErr}
			dash, err := newCollector(stub, stubUser{user: tc.user}).Collect(context.Background(), "alice")
			require.NoError(t, err)
			require.True(t, dash.Degraded)
			require.Equal(t, []string{tc.wantWarning}, dash.Warnings)
			require.Equal(t, "alice", dash.Profile.Name)
			require.Equal(t, tc.wantCredits, dash.Profile.Credits)
			require.Equal(t, &model.ProfileCount{}, dash.Profile.Count)
		})
	}
}

// Test a failing profile of another user is an error
func TestCollector_ProfileErrorWithoutFallback(t *testing.T) {
	t.Parallel()

	stub := &stubProfiles{profileErr: forbidden}

	_, err := newCollector(stub, stubUser{user: &model.User{Name: "bob"}}).Collect(context.Background(), "alice")
	require.Error(t, err)
	require.True(t, auctionerrors.IsForbidden(err))

	_, err = newCollector(stub, nil).Collect(context.Background(), "alice")
	require.Error(t, err)
}

// Test the four fetches run concurrently
func TestCollector_Concurrent(t *testing.T) {
	t.Parallel()

	stub := &stubProfiles{profile: model.Profile{Name: "alice"}, delay: 200 * time.Millisecond}

	start := time.Now()
	_, err := newCollector(stub, nil).Collect(context.Background(), "alice")
	require.NoError(t, err)
	require.Less(t, time.Since(start), 600*time.Millisecond)
}

// Test cancellation is reported instead of a degraded dashboard
func TestCollector_Cancelled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		users    UserSource
		cancel   func() (context.Context, context.CancelFunc)
		expected error
	}{
		{
			name: "deadline",
			cancel: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 20*time.Millisecond)
			},
			expected: context.DeadlineExceeded,
		},
		{
			name:  "cancelled_with_session_fallback",
			users: stubUser{user: &model.User{Name: "alice", Credits: 300}},
			cancel: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				time.AfterFunc(20*time.Millisecond, cancel)
				return ctx, cancel
			},
			expected: context.Canceled,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stub := &stubProfiles{profile: model.Profile{Name: "alice"}, delay: time.Second}
			ctx, cancel := tc.cancel()
			defer cancel()

			start := time.Now()
			dash, err := newCollector(stub, tc.users).Collect(ctx, "alice")
			require.ErrorIs(t, err, tc.expected)
			require.Empty(t, dash.Warnings)
			require.False(t, dash.Degraded)
			require.Less(t, time.Since(start), 500*time.Millisecond)
		})
	}
}
