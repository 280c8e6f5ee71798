package profiles

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"auction-gateway/internal/apiclient"
	"auction-gateway/internal/auctionerrors"
	model "auction-gateway/internal/models"
)

const profilesPath = "/auction/profiles"

// ProfileInclude selects the related collections embedded in a profile
type ProfileInclude struct {
	Listings bool
	Wins     bool
}

// ProfileQuery parameters of the profiles endpoint
type ProfileQuery struct {
	ProfileInclude
	Page  int
	Limit int
}

// ListingsQuery parameters of the per-profile listings and wins endpoints
type ListingsQuery struct {
	Page   int
	Limit  int
	Seller bool
	Bids   bool
}

// BidsQuery parameters of the per-profile bids endpoint
type BidsQuery struct {
	Page     int
	Limit    int
	Listings bool
}

// UpdateProfileForm is the profile edit form; empty fields are left untouched
type UpdateProfileForm struct {
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	BannerURL string `json:"bannerUrl"`
}

func (i ProfileInclude) params() *apiclient.Params {
	return apiclient.NewParams().Flag("_listings", i.Listings).Flag("_wins", i.Wins)
}

// ProfileService maps profile intents onto upstream calls
type ProfileService struct {
	api apiclient.Requester
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(api apiclient.Requester) *ProfileService {
	return &ProfileService{api: api}
}

// GetAllProfiles returns one page of profiles
func (s *ProfileService) GetAllProfiles(ctx context.Context, q ProfileQuery) (model.Envelope[[]model.Profile], error) {
	var resp model.Envelope[[]model.Profile]
	req := apiclient.Request{
		Method: http.MethodGet,
		Path:   profilesPath,
		Query:  q.params().Int("page", q.Page).Int("limit", q.Limit).Values(),
	}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return resp, fmt.Errorf("profiles: get all: %w", err)
	}
	return resp, nil
}

// GetProfile returns a single profile
func (s *ProfileService) GetProfile(ctx context.Context, name string, inc ProfileInclude) (model.Profile, error) {
	path, err := profilePath(name)
	if err != nil {
		return model.Profile{}, err
	}

	var resp model.Envelope[model.Profile]
	req := apiclient.Request{Method: http.MethodGet, Path: path, Query: inc.params().Values()}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return model.Profile{}, fmt.Errorf("profiles: get %s: %w", name, err)
	}
	return resp.Data, nil
}

// UpdateProfile submits the edit form. Image alt texts are derived from the name.
func (s *ProfileService) UpdateProfile(ctx context.Context, name string, form UpdateProfileForm) (model.Profile, error) {
	path, err := profilePath(name)
	if err != nil {
		return model.Profile{}, err
	}

	data := BuildUpdate(name, form)
	if data == (model.UpdateProfileData{}) {
		return model.Profile{}, auctionerrors.Invalid(auctionerrors.ErrInvalidProfile, "Provide a bio, avatar or banner to update")
	}

	var resp model.Envelope[model.Profile]
	req := apiclient.Request{Method: http.MethodPut, Path: path, Body: data}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return model.Profile{}, fmt.Errorf("profiles: update %s: %w", name, err)
	}
	return resp.Data, nil
}

// BuildUpdate maps the edit form onto the upstream payload
func BuildUpdate(name string, form UpdateProfileForm) model.UpdateProfileData {
	data := model.UpdateProfileData{Bio: strings.TrimSpace(form.Bio)}
	if u := strings.TrimSpace(form.AvatarURL); u != "" {
		data.Avatar = &model.Media{URL: u, Alt: name + "'s avatar"}
	}
	if u := strings.TrimSpace(form.BannerURL); u != "" {
		data.Banner = &model.Media{URL: u, Alt: name + "'s banner"}
	}
	return data
}

// GetListingsByProfile returns listings created by the profile
func (s *ProfileService) GetListingsByProfile(ctx context.Context, name string, q ListingsQuery) (model.Envelope[[]model.Listing], error) {
	return s.listings(ctx, name, "listings", q)
}

// GetWinsByProfile returns listings the profile won
func (s *ProfileService) GetWinsByProfile(ctx context.Context, name string, q ListingsQuery) (model.Envelope[[]model.Listing], error) {
	return s.listings(ctx, name, "wins", q)
}

func (s *ProfileService) listings(ctx context.Context, name, collection string, q ListingsQuery) (model.Envelope[[]model.Listing], error) {
	var resp model.Envelope[[]model.Listing]
	path, err := profilePath(name)
	if err != nil {
		return resp, err
	}

	req := apiclient.Request{
		Method: http.MethodGet,
		Path:   path + "/" + collection,
		Query: apiclient.NewParams().
			Int("page", q.Page).
			Int("limit", q.Limit).
			Flag("_seller", q.Seller).
			Flag("_bids", q.Bids).
			Values(),
	}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return resp, fmt.Errorf("profiles: get %s of %s: %w", collection, name, err)
	}
	return resp, nil
}

// GetBidsByProfile returns bids placed by the profile
func (s *ProfileService) GetBidsByProfile(ctx context.Context, name string, q BidsQuery) (model.Envelope[[]model.Bid], error) {
	var resp model.Envelope[[]model.Bid]
	path, err := profilePath(name)
	if err != nil {
		return resp, err
	}

	req := apiclient.Request{
		Method: http.MethodGet,
		Path:   path + "/bids",
		Query:  apiclient.NewParams().Int("page", q.Page).Int("limit", q.Limit).Flag("_listings", q.Listings).Values(),
	}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return resp, fmt.Errorf("profiles: get bids of %s: %w", name, err)
	}
	return resp, nil
}

// SearchProfiles searches profiles by name or bio
func (s *ProfileService) SearchProfiles(ctx context.Context, query string, page, limit int) (model.Envelope[[]model.Profile], error) {
	var resp model.Envelope[[]model.Profile]
	query = strings.TrimSpace(query)
	if query == "" {
		return resp, fmt.Errorf("profiles: %w", auctionerrors.ErrEmptyQuery)
	}

	req := apiclient.Request{
		Method: http.MethodGet,
		Path:   profilesPath + "/search",
		Query:  apiclient.NewParams().String("q", query).Int("page", page).Int("limit", limit).Values(),
	}
	if err := s.api.Do(ctx, req, &resp); err != nil {
		return resp, fmt.Errorf("profiles: search %q: %w", query, err)
	}
	return resp, nil
}

func profilePath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("profiles: %w", auctionerrors.ErrMissingUsername)
	}
	return profilesPath + "/" + url.PathEscape(name), nil
}
