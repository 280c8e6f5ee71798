package helpers

import (
	"sort"
	"time"

	"auction-gateway/internal/display"
	model "auction-gateway/internal/models"
)

// Request DTOs. Listing and bid fields are checked by the listing service so
// the caller gets its specific messages.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	BannerURL string `json:"bannerUrl"`
}

type MediaRequest struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type CreateListingRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Media       []MediaRequest `json:"media"`
	EndsAt      time.Time      `json:"endsAt"`
}

type UpdateListingRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Tags        []string       `json:"tags"`
	Media       []MediaRequest `json:"media"`
}

type PlaceBidRequest struct {
	Amount int `json:"amount"`
}

type UpdateProfileRequest struct {
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	BannerURL string `json:"bannerUrl"`
}

// ToModel converts the register form; empty image URLs are dropped
func (r RegisterRequest) ToModel() model.RegisterData {
	data := model.RegisterData{Name: r.Name, Email: r.Email, Password: r.Password, Bio: r.Bio}
	if r.AvatarURL != "" {
		data.Avatar = &model.Media{URL: r.AvatarURL, Alt: r.Name + "'s avatar"}
	}
	if r.BannerURL != "" {
		data.Banner = &model.Media{URL: r.BannerURL, Alt: r.Name + "'s banner"}
	}
	return data
}

func (r CreateListingRequest) ToModel() model.CreateListingData {
	return model.CreateListingData{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		Media:       toMedia(r.Media),
		EndsAt:      r.EndsAt,
	}
}

func (r UpdateListingRequest) ToModel() model.UpdateListingData {
	return model.UpdateListingData{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		Media:       toMedia(r.Media),
	}
}

func toMedia(in []MediaRequest) []model.Media {
	var out []model.Media
	for _, m := range in {
		out = append(out, model.Media{URL: m.URL, Alt: m.Alt})
	}
	return out
}

// Response DTOs

// BidView is a bid with its relative age
type BidView struct {
	model.Bid
	TimeAgo string `json:"timeAgo"`
}

// ListingView is a listing with the figures the UI derives from it.
// Bids are ordered newest first.
type ListingView struct {
	model.Listing
	Bids          []BidView `json:"bids"`
	BidCount      int       `json:"bidCount"`
	HighestBid    int       `json:"highestBid"`
	MinimumBid    int       `json:"minimumBid"`
	Active        bool      `json:"active"`
	TimeRemaining string    `json:"timeRemaining"`
	TimeLeft      string    `json:"timeLeft"`
}

func NewListingView(l model.Listing, now time.Time) ListingView {
	bids := make([]BidView, 0, len(l.Bids))
	for _, b := range l.Bids {
		bids = append(bids, BidView{Bid: b, TimeAgo: display.TimeAgo(b.Created, now)})
	}
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Created.After(bids[j].Created)
	})

	count := l.BidCount()
	if count == 0 {
		count = len(l.Bids)
	}

	return ListingView{
		Listing:       l,
		Bids:          bids,
		BidCount:      count,
		HighestBid:    display.HighestBid(l),
		MinimumBid:    display.MinimumBid(l),
		Active:        display.IsActive(l, now),
		TimeRemaining: display.TimeRemaining(l.EndsAt, now),
		TimeLeft:      display.TimeLeft(l.EndsAt, now),
	}
}

func NewListingViews(listings []model.Listing, now time.Time) []ListingView {
	views := make([]ListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, NewListingView(l, now))
	}
	return views
}

// BrowseResponse is a browse page with listing views
type BrowseResponse struct {
	Listings      []ListingView `json:"listings"`
	Meta          model.Meta    `json:"meta"`
	HasMore       bool          `json:"hasMore"`
	AvailableTags []string      `json:"availableTags"`
}
