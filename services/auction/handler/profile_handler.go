package handler

import (
	"context"
	"net/http"
	"time"

	"auction-gateway/internal/analytics"
	model "auction-gateway/internal/models"
	profiles "auction-gateway/internal/profileService"
	"auction-gateway/services/auction/helpers"
	"auction-gateway/utils"

	"github.com/gin-gonic/gin"
)

type ProfileServiceInterface interface {
	GetAllProfiles(ctx context.Context, q profiles.ProfileQuery) (model.Envelope[[]model.Profile], error)
	GetProfile(ctx context.Context, name string, inc profiles.ProfileInclude) (model.Profile, error)
	UpdateProfile(ctx context.Context, name string, form profiles.UpdateProfileForm) (model.Profile, error)
	GetListingsByProfile(ctx context.Context, name string, q profiles.ListingsQuery) (model.Envelope[[]model.Listing], error)
	GetBidsByProfile(ctx context.Context, name string, q profiles.BidsQuery) (model.Envelope[[]model.Bid], error)
	GetWinsByProfile(ctx context.Context, name string, q profiles.ListingsQuery) (model.Envelope[[]model.Listing], error)
	SearchProfiles(ctx context.Context, query string, page, limit int) (model.Envelope[[]model.Profile], error)
}

type DashboardCollector interface {
	Collect(ctx context.Context, name string) (analytics.Dashboard, error)
}

type ProfileHandler struct {
	service   ProfileServiceInterface
	dashboard DashboardCollector
	refresher CreditsRefresher
	now       func() time.Time
}

func NewProfileHandler(service ProfileServiceInterface, dashboard DashboardCollector, refresher CreditsRefresher) *ProfileHandler {
	return &ProfileHandler{service: service, dashboard: dashboard, refresher: refresher, now: time.Now}
}

// GetProfilesHandler handles GET /profiles
func (h *ProfileHandler) GetProfilesHandler(c *gin.Context) {
	q := profiles.ProfileQuery{
		ProfileInclude: profiles.ProfileInclude{
			Listings: helpers.QueryBool(c, "_listings", false),
			Wins:     helpers.QueryBool(c, "_wins", false),
		},
		Page:  helpers.QueryInt(c, "page", 0),
		Limit: helpers.QueryInt(c, "limit", 0),
	}

	resp, err := h.service.GetAllProfiles(c.Request.Context(), q)
	if err != nil {
		helpers.RespondError(c, "GetProfilesHandler", "error retrieving profiles", err, nil)
		return
	}

	utils.JSONPage(c, http.StatusOK, resp.Data, resp.Meta, "profiles retrieved successfully")
}

// SearchProfilesHandler handles GET /profiles/search
func (h *ProfileHandler) SearchProfilesHandler(c *gin.Context) {
	query := c.Query("q")
	resp, err := h.service.SearchProfiles(c.Request.Context(), query, helpers.QueryInt(c, "page", 0), helpers.QueryInt(c, "limit", 0))
	if err != nil {
		helpers.RespondError(c, "SearchProfilesHandler", "error searching profiles", err, map[string]any{"query": query})
		return
	}

	utils.JSONPage(c, http.StatusOK, resp.Data, resp.Meta, "profiles retrieved successfully")
	helpers.LogSuccess("SearchProfilesHandler", "profiles retrieved successfully", map[string]any{
		"query": query,
		"count": len(resp.Data),
	})
}

// GetProfileHandler handles GET /profiles/:name
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	name := c.Param("name")
	inc := profiles.ProfileInclude{
		Listings: helpers.QueryBool(c, "_listings", true),
		Wins:     helpers.QueryBool(c, "_wins", true),
	}

	profile, err := h.service.GetProfile(c.Request.Context(), name, inc)
	if err != nil {
		helpers.RespondError(c, "GetProfileHandler", "error retrieving profile", err, map[string]any{"profile": name})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
}

// UpdateProfileHandler handles PUT /profiles/:name
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	name := c.Param("name")
	var req helpers.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	form := profiles.UpdateProfileForm{Bio: req.Bio, AvatarURL: req.AvatarURL, BannerURL: req.BannerURL}
	profile, err := h.service.UpdateProfile(c.Request.Context(), name, form)
	if err != nil {
		helpers.RespondError(c, "UpdateProfileHandler", "failed to update profile", err, map[string]any{"profile": name})
		return
	}

	if h.refresher != nil {
		h.refresher.RefreshProfile(c.Request.Context())
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{"profile": name})
}

// GetProfileListingsHandler handles GET /profiles/:name/listings
func (h *ProfileHandler) GetProfileListingsHandler(c *gin.Context) {
	name := c.Param("name")
	resp, err := h.service.GetListingsByProfile(c.Request.Context(), name, listingsQuery(c))
	if err != nil {
		helpers.RespondError(c, "GetProfileListingsHandler", "error retrieving profile listings", err, map[string]any{"profile": name})
		return
	}

	utils.JSONPage(c, http.StatusOK, helpers.NewListingViews(resp.Data, h.now()), resp.Meta, "listings retrieved successfully")
}

// GetProfileBidsHandler handles GET /profiles/:name/bids
func (h *ProfileHandler) GetProfileBidsHandler(c *gin.Context) {
	name := c.Param("name")
	q := profiles.BidsQuery{
		Page:     helpers.QueryInt(c, "page", 0),
		Limit:    helpers.QueryInt(c, "limit", 0),
		Listings: helpers.QueryBool(c, "_listings", true),
	}

	resp, err := h.service.GetBidsByProfile(c.Request.Context(), name, q)
	if err != nil {
		helpers.RespondError(c, "GetProfileBidsHandler", "error retrieving profile bids", err, map[string]any{"profile": name})
		return
	}

	utils.JSONPage(c, http.StatusOK, resp.Data, resp.Meta, "bids retrieved successfully")
}

// GetProfileWinsHandler handles GET /profiles/:name/wins
func (h *ProfileHandler) GetProfileWinsHandler(c *gin.Context) {
	name := c.Param("name")
	resp, err := h.service.GetWinsByProfile(c.Request.Context(), name, listingsQuery(c))
	if err != nil {
		helpers.RespondError(c, "GetProfileWinsHandler", "error retrieving profile wins", err, map[string]any{"profile": name})
		return
	}

	utils.JSONPage(c, http.StatusOK, helpers.NewListingViews(resp.Data, h.now()), resp.Meta, "wins retrieved successfully")
}

// DashboardHandler handles GET /profiles/:name/dashboard
func (h *ProfileHandler) DashboardHandler(c *gin.Context) {
	name := c.Param("name")
	dash, err := h.dashboard.Collect(c.Request.Context(), name)
	if err != nil {
		helpers.RespondError(c, "DashboardHandler", "error collecting dashboard", err, map[string]any{"profile": name})
		return
	}

	utils.JSONResponse(c, http.StatusOK, dash, "dashboard retrieved successfully")
	helpers.LogSuccess("DashboardHandler", "dashboard retrieved successfully", map[string]any{
		"profile":  name,
		"degraded": dash.Degraded,
	})
}

func listingsQuery(c *gin.Context) profiles.ListingsQuery {
	return profiles.ListingsQuery{
		Page:   helpers.QueryInt(c, "page", 0),
		Limit:  helpers.QueryInt(c, "limit", 0),
		Seller: helpers.QueryBool(c, "_seller", true),
		Bids:   helpers.QueryBool(c, "_bids", true),
	}
}
