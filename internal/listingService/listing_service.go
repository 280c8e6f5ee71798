package listings

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"auction-gateway/internal/apiclient"
	"auction-gateway/internal/auctionerrors"
	model "auction-gateway/internal/models"
	"auction-gateway/utils"
)

const listingsPath = "/auction/listings"

// Include selects the related resources embedded in listing responses
type Include struct {
	Seller bool
	Bids   bool
}

// Full embeds both seller and bids
var Full = Include{Seller: true, Bids: true}

// ListingQuery parameters of the listings endpoint; zero values are omitted
type ListingQuery struct {
	Include
	Page      int
	Limit     int
	Active    bool
	Tag       string
	Sort      string
	SortOrder string
}

// PageQuery parameters of the search endpoint
type PageQuery struct {
	Include
	Page  int
	Limit int
}

func (q ListingQuery) values() url.Values {
	return apiclient.NewParams().
		Int("page", q.Page).
		Int("limit", q.Limit).
		Flag("_seller", q.Seller).
		Flag("_bids", q.Bids).
		Flag("_active", q.Active).
		String("_tag", q.Tag).
		String("sort", q.Sort).
		String("sortOrder", q.SortOrder).
		Values()
}

func (q PageQuery) params() *apiclient.Params {
	return apiclient.NewParams().
		Int("page", q.Page).
		Int("limit", q.Limit).
		Flag("_seller", q.Seller).
		Flag("_bids", q.Bids)
}

func (i Include) values() url.Values {
	return apiclient.NewParams().Flag("_seller", i.Seller).Flag("_bids", i.Bids).Values()
}

// Option configures a ListingService
type Option func(*ListingService)

// WithClock overrides the clock used for deadline checks
func WithClock(now func() time.Time) Option {
	return func(s *ListingService) { s.now = now }
}

// ListingService maps listing intents onto upstream calls
type ListingService struct {
	api apiclient.Requester
	now func() time.Time
}

// NewListingService creates a new ListingService instance
func NewListingService(api apiclient.Requester, opts ...Option) *ListingService {
	s := &ListingService{api: api, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAllListings returns one page of listings
func (s *ListingService) GetAllListings(ctx context.Context, q ListingQuery) (model.Envelope[[]model.Listing], error) {
	var resp model.Envelope[[]model.Listing]
	req := apiclient.Request{Method: http.MethodGet, Path: listingsPath, Query: q.values()}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return resp, fmt.Errorf("listings: get all: %w", err)
	}
	return resp, nil
}

// GetListingByID returns a single listing
func (s *ListingService) GetListingByID(ctx context.Context, id string, inc Include) (model.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return model.Listing{}, fmt.Errorf("listings: %w", auctionerrors.ErrMissingListing)
	}

	var resp model.Envelope[model.Listing]
	req := apiclient.Request{Method: http.MethodGet, Path: listingPath(id), Query: inc.values()}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return model.Listing{}, fmt.Errorf("listings: get %s: %w", id, err)
	}
	return resp.Data, nil
}

// CreateListing validates and submits a new listing
func (s *ListingService) CreateListing(ctx context.Context, data model.CreateListingData) (model.Listing, error) {
	normalized, err := NormalizeCreate(data, s.now())
	if err != nil {
		return model.Listing{}, err
	}

	var resp model.Envelope[model.Listing]
	req := apiclient.Request{Method: http.MethodPost, Path: listingsPath, Body: normalized}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return model.Listing{}, fmt.Errorf("listings: create: %w", err)
	}

	utils.Info("listings: created", map[string]any{"id": resp.Data.ID, "title": resp.Data.Title})
	return resp.Data, nil
}

// UpdateListing applies a partial update
func (s *ListingService) UpdateListing(ctx context.Context, id string, data model.UpdateListingData) (model.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return model.Listing{}, fmt.Errorf("listings: %w", auctionerrors.ErrMissingListing)
	}
	normalized, err := NormalizeUpdate(data)
	if err != nil {
		return model.Listing{}, err
	}

	var resp model.Envelope[model.Listing]
	req := apiclient.Request{Method: http.MethodPut, Path: listingPath(id), Body: normalized}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return model.Listing{}, fmt.Errorf("listings: update %s: %w", id, err)
	}
	return resp.Data, nil
}

// DeleteListing removes a listing owned by the session user
func (s *ListingService) DeleteListing(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("listings: %w", auctionerrors.ErrMissingListing)
	}

	req := apiclient.Request{Method: http.MethodDelete, Path: listingPath(id)}
	if err := s.api.Do(ctx, req, nil); err != nil {
		return fmt.Errorf("listings: delete %s: %w", id, err)
	}

	utils.Info("listings: deleted", map[string]any{"id": id})
	return nil
}

// PlaceBid checks the bid against the current listing, submits it and
// returns the listing refetched with its updated bid history.
func (s *ListingService) PlaceBid(ctx context.Context, listingID string, amount int) (model.Listing, error) {
	if err := ValidateAmount(amount); err != nil {
		return model.Listing{}, err
	}

	current, err := s.GetListingByID(ctx, listingID, Full)
	if err != nil {
		return model.Listing{}, err
	}
	if err := ValidateBid(current, amount, s.now()); err != nil {
		return model.Listing{}, err
	}

	req := apiclient.Request{
		Method: http.MethodPost,
		Path:   listingPath(listingID) + "/bids",
		Body:   model.CreateBidData{Amount: amount},
	}
	if err := s.api.Do(ctx, req, nil); err != nil {
		return model.Listing{}, fmt.Errorf("listings: bid on %s: %w", listingID, err)
	}

	utils.Info("listings: bid placed", map[string]any{"listing": listingID, "amount": amount})
	return s.GetListingByID(ctx, listingID, Full)
}

// SearchListings runs a free-text search; upstream applies no sort or tag filter
func (s *ListingService) SearchListings(ctx context.Context, query string, q PageQuery) (model.Envelope[[]model.Listing], error) {
	var resp model.Envelope[[]model.Listing]
	query = strings.TrimSpace(query)
	if query == "" {
		return resp, fmt.Errorf("listings: %w", auctionerrors.ErrEmptyQuery)
	}

	req := apiclient.Request{
		Method: http.MethodGet,
		Path:   listingsPath + "/search",
		Query:  q.params().String("q", query).Values(),
	}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return resp, fmt.Errorf("listings: search %q: %w", query, err)
	}
	return resp, nil
}

func listingPath(id string) string {
	return listingsPath + "/" + url.PathEscape(id)
}
