package analytics

import (
	"math"
	"sort"
	"time"

	model "auction-gateway/internal/models"
)

// Recent activity limits per source and overall
const (
	recentBids     = 5
	recentListings = 3
	recentWins     = 3
	recentTotal    = 6
)

// Activity is the raw material of the dashboard
type Activity struct {
	Listings []model.Listing
	Bids     []model.Bid
	Wins     []model.Listing
}

// Metrics are the derived dashboard figures
type Metrics struct {
	TotalListings         int     `json:"totalListings"`
	ActiveListings        int     `json:"activeListings"`
	ExpiredListings       int     `json:"expiredListings"`
	TotalBidsReceived     int     `json:"totalBidsReceived"`
	AverageBidsPerListing float64 `json:"averageBidsPerListing"`
	TotalBids             int     `json:"totalBids"`
	TotalAmountBid        int     `json:"totalAmountBid"`
	AverageBidAmount      int     `json:"averageBidAmount"`
	TotalWins             int     `json:"totalWins"`
	WinRate               int     `json:"winRate"`
}

// Summarize computes every metric at now
func Summarize(a Activity, now time.Time) Metrics {
	return Metrics{
		TotalListings:         len(a.Listings),
		ActiveListings:        ActiveListings(a.Listings, now),
		ExpiredListings:       ExpiredListings(a.Listings, now),
		TotalBidsReceived:     TotalBidsReceived(a.Listings),
		AverageBidsPerListing: AverageBidsPerListing(a.Listings),
		TotalBids:             len(a.Bids),
		TotalAmountBid:        TotalAmountBid(a.Bids),
		AverageBidAmount:      AverageBidAmount(a.Bids),
		TotalWins:             len(a.Wins),
		WinRate:               WinRate(a.Bids, a.Wins),
	}
}

// ActiveListings counts listings ending after now
func ActiveListings(listings []model.Listing, now time.Time) int {
	n := 0
	for _, l := range listings {
		if l.EndsAt.After(now) {
			n++
		}
	}
	return n
}

// ExpiredListings counts listings that ended at or before now
func ExpiredListings(listings []model.Listing, now time.Time) int {
	return len(listings) - ActiveListings(listings, now)
}

// TotalBidsReceived sums the upstream bid counters
func TotalBidsReceived(listings []model.Listing) int {
	total := 0
	for _, l := range listings {
		total += l.BidCount()
	}
	return total
}

// AverageBidsPerListing is rounded to one decimal, 0 without listings
func AverageBidsPerListing(listings []model.Listing) float64 {
	if len(listings) == 0 {
		return 0
	}
	return math.Round(float64(TotalBidsReceived(listings))/float64(len(listings))*10) / 10
}

// TotalAmountBid sums the placed bid amounts
func TotalAmountBid(bids []model.Bid) int {
	total := 0
	for _, b := range bids {
		total += b.Amount
	}
	return total
}

// AverageBidAmount is the rounded mean, 0 without bids
func AverageBidAmount(bids []model.Bid) int {
	if len(bids) == 0 {
		return 0
	}
	return int(math.Round(float64(TotalAmountBid(bids)) / float64(len(bids))))
}

// WinRate is distinct won listings over distinct listings bid on, as a
// rounded percentage. Bids without a listing reference are not counted.
func WinRate(bids []model.Bid, wins []model.Listing) int {
	if len(bids) == 0 {
		return 0
	}

	bidOn := make(map[string]struct{}, len(bids))
	for _, b := range bids {
		if id := b.ListingID(); id != "" {
			bidOn[id] = struct{}{}
		}
	}
	if len(bidOn) == 0 {
		return 0
	}

	won := make(map[string]struct{}, len(wins))
	for _, w := range wins {
		won[w.ID] = struct{}{}
	}
	return int(math.Round(float64(len(won)) / float64(len(bidOn)) * 100))
}

// Kind tags an activity feed entry
type Kind string

const (
	KindBid     Kind = "bid"
	KindListing Kind = "listing"
	KindWin     Kind = "win"
)

// Event is one entry of the recent activity feed
type Event struct {
	Kind    Kind           `json:"type"`
	Date    time.Time      `json:"date"`
	Bid     *model.Bid     `json:"bid,omitempty"`
	Listing *model.Listing `json:"listing,omitempty"`
}

// RecentActivity merges the newest bids, listings and wins into one feed,
// newest first. Wins are dated by their last update.
func RecentActivity(a Activity) []Event {
	events := make([]Event, 0, recentBids+recentListings+recentWins)

	bids := newestFirst(a.Bids, func(b model.Bid) time.Time { return b.Created })
	for i := range bids[:min(recentBids, len(bids))] {
		b := bids[i]
		events = append(events, Event{Kind: KindBid, Date: b.Created, Bid: &b})
	}

	listings := newestFirst(a.Listings, func(l model.Listing) time.Time { return l.Created })
	for i := range listings[:min(recentListings, len(listings))] {
		l := listings[i]
		events = append(events, Event{Kind: KindListing, Date: l.Created, Listing: &l})
	}

	wins := newestFirst(a.Wins, func(l model.Listing) time.Time { return l.Updated })
	for i := range wins[:min(recentWins, len(wins))] {
		w := wins[i]
		events = append(events, Event{Kind: KindWin, Date: w.Updated, Listing: &w})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})
	if len(events) > recentTotal {
		events = events[:recentTotal]
	}
	return events
}

// newestFirst returns a stably sorted copy; the input is left untouched
func newestFirst[T any](items []T, at func(T) time.Time) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return at(out[i]).After(at(out[j]))
	})
	return out
}
