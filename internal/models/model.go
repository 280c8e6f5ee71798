package models

import "time"

// Media is an image reference attached to a listing or profile
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ProfileCount holds the upstream aggregate counters of a profile
type ProfileCount struct {
	Listings int `json:"listings"`
	Wins     int `json:"wins"`
}

// Profile represents an auction participant
type Profile struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Bio      string        `json:"bio,omitempty"`
	Avatar   *Media        `json:"avatar,omitempty"`
	Banner   *Media        `json:"banner,omitempty"`
	Credits  int           `json:"credits"`
	Count    *ProfileCount `json:"_count,omitempty"`
	Listings []Listing     `json:"listings,omitempty"`
	Wins     []Listing     `json:"wins,omitempty"`
}

// ListingCount holds the upstream aggregate counters of a listing
type ListingCount struct {
	Bids int `json:"bids"`
}

// Listing represents an auctioned item with a deadline and a bid history
type Listing struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Media       []Media       `json:"media,omitempty"`
	Created     time.Time     `json:"created"`
	Updated     time.Time     `json:"updated"`
	EndsAt      time.Time     `json:"endsAt"`
	Count       *ListingCount `json:"_count,omitempty"`
	Seller      *Profile      `json:"seller,omitempty"`
	Bids        []Bid         `json:"bids,omitempty"`
}

// BidCount returns the number of bids upstream reports for the listing
func (l Listing) BidCount() int {
	if l.Count == nil {
		return 0
	}
	return l.Count.Bids
}

// HasTag reports whether the listing carries exactly the given tag
func (l Listing) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Bid represents a credit offer placed by a profile on a listing.
// Listing is only populated when the bid was fetched with its listing included.
type Bid struct {
	ID      string    `json:"id"`
	Amount  int       `json:"amount"`
	Bidder  *Profile  `json:"bidder,omitempty"`
	Created time.Time `json:"created"`
	Listing *Listing  `json:"listing,omitempty"`
}

// ListingID returns the id of the referenced listing, or "" when absent
func (b Bid) ListingID() string {
	if b.Listing == nil {
		return ""
	}
	return b.Listing.ID
}

// Meta is the pagination block of every upstream envelope
type Meta struct {
	IsFirstPage  bool `json:"isFirstPage,omitempty"`
	IsLastPage   bool `json:"isLastPage,omitempty"`
	CurrentPage  int  `json:"currentPage,omitempty"`
	PreviousPage *int `json:"previousPage,omitempty"`
	NextPage     *int `json:"nextPage,omitempty"`
	PageCount    int  `json:"pageCount,omitempty"`
	TotalCount   int  `json:"totalCount,omitempty"`
}

// Envelope is the {data, meta} wrapper returned by the upstream API
type Envelope[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}

// CreateListingData is the payload for a new listing
type CreateListingData struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Media       []Media   `json:"media,omitempty"`
	EndsAt      time.Time `json:"endsAt"`
}

// UpdateListingData is a partial listing update; nil fields are left untouched
type UpdateListingData struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Media       []Media  `json:"media,omitempty"`
}

// CreateBidData is the payload for a new bid
type CreateBidData struct {
	Amount int `json:"amount"`
}

// UpdateProfileData is the payload for a profile update
type UpdateProfileData struct {
	Bio    string `json:"bio,omitempty"`
	Avatar *Media `json:"avatar,omitempty"`
	Banner *Media `json:"banner,omitempty"`
}
