package handler

import (
	"context"
	"net/http"
	"time"

	listings "auction-gateway/internal/listingService"
	model "auction-gateway/internal/models"
	"auction-gateway/services/auction/helpers"
	"auction-gateway/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	GetAllListings(ctx context.Context, q listings.ListingQuery) (model.Envelope[[]model.Listing], error)
	GetListingByID(ctx context.Context, id string, inc listings.Include) (model.Listing, error)
	CreateListing(ctx context.Context, data model.CreateListingData) (model.Listing, error)
	UpdateListing(ctx context.Context, id string, data model.UpdateListingData) (model.Listing, error)
	DeleteListing(ctx context.Context, id string) error
	PlaceBid(ctx context.Context, listingID string, amount int) (model.Listing, error)
	Browse(ctx context.Context, q listings.BrowseQuery) (listings.BrowseResult, error)
}

// CreditsRefresher re-reads the session user's balance after it changed upstream
type CreditsRefresher interface {
	RefreshProfile(ctx context.Context)
}

type ListingHandler struct {
	service ListingServiceInterface
	credits CreditsRefresher
	now     func() time.Time
}

func NewListingHandler(service ListingServiceInterface, credits CreditsRefresher) *ListingHandler {
	return &ListingHandler{service: service, credits: credits, now: time.Now}
}

// GetListingsHandler handles GET /listings
func (h *ListingHandler) GetListingsHandler(c *gin.Context) {
	q := listings.ListingQuery{
		Include: listings.Include{
			Seller: helpers.QueryBool(c, "_seller", true),
			Bids:   helpers.QueryBool(c, "_bids", true),
		},
		Page:      helpers.QueryInt(c, "page", 0),
		Limit:     helpers.QueryInt(c, "limit", 0),
		Active:    helpers.QueryBool(c, "_active", false),
		Tag:       c.Query("_tag"),
		Sort:      c.Query("sort"),
		SortOrder: c.Query("sortOrder"),
	}

	resp, err := h.service.GetAllListings(c.Request.Context(), q)
	if err != nil {
		helpers.RespondError(c, "GetListingsHandler", "error retrieving listings", err, nil)
		return
	}

	views := helpers.NewListingViews(resp.Data, h.now())
	utils.JSONPage(c, http.StatusOK, views, resp.Meta, "listings retrieved successfully")
	helpers.LogSuccess("GetListingsHandler", "listings retrieved successfully", map[string]any{"count": len(views)})
}

// SearchListingsHandler handles GET /listings/search
func (h *ListingHandler) SearchListingsHandler(c *gin.Context) {
	q := listings.BrowseQuery{
		Query:     c.Query("q"),
		Tag:       c.Query("tag"),
		Sort:      c.Query("sort"),
		SortOrder: c.Query("sortOrder"),
		Page:      helpers.QueryInt(c, "page", 1),
		Limit:     helpers.QueryInt(c, "limit", listings.DefaultPageSize),
	}

	result, err := h.service.Browse(c.Request.Context(), q)
	if err != nil {
		helpers.RespondError(c, "SearchListingsHandler", "error searching listings", err, map[string]any{"query": q.Query})
		return
	}

	resp := helpers.BrowseResponse{
		Listings:      helpers.NewListingViews(result.Listings, h.now()),
		Meta:          result.Meta,
		HasMore:       result.HasMore,
		AvailableTags: result.AvailableTags,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "listings retrieved successfully")
	helpers.LogSuccess("SearchListingsHandler", "listings retrieved successfully", map[string]any{
		"query": q.Query,
		"tag":   q.Tag,
		"count": len(resp.Listings),
	})
}

// GetListingHandler handles GET /listings/:id
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	id := c.Param("id")
	listing, err := h.service.GetListingByID(c.Request.Context(), id, listings.Full)
	if err != nil {
		helpers.RespondError(c, "GetListingHandler", "error retrieving listing", err, map[string]any{"listing_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingView(listing, h.now()), "listing retrieved successfully")
}

// CreateListingHandler handles POST /listings
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), req.ToModel())
	if err != nil {
		helpers.RespondError(c, "CreateListingHandler", "failed to create listing", err, map[string]any{"title": req.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewListingView(listing, h.now()), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{"listing_id": listing.ID})
}

// UpdateListingHandler handles PUT /listings/:id
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	id := c.Param("id")
	var req helpers.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateListingHandler", err)
		return
	}

	listing, err := h.service.UpdateListing(c.Request.Context(), id, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "UpdateListingHandler", "failed to update listing", err, map[string]any{"listing_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingView(listing, h.now()), "listing updated successfully")
	helpers.LogSuccess("UpdateListingHandler", "listing updated successfully", map[string]any{"listing_id": id})
}

// DeleteListingHandler handles DELETE /listings/:id
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteListing(c.Request.Context(), id); err != nil {
		helpers.RespondError(c, "DeleteListingHandler", "failed to delete listing", err, map[string]any{"listing_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "listing deleted successfully")
	helpers.LogSuccess("DeleteListingHandler", "listing deleted successfully", map[string]any{"listing_id": id})
}

// PlaceBidHandler handles POST /listings/:id/bids
func (h *ListingHandler) PlaceBidHandler(c *gin.Context) {
	id := c.Param("id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	listing, err := h.service.PlaceBid(c.Request.Context(), id, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", "failed to place bid", err, map[string]any{
			"listing_id": id,
			"amount":     req.Amount,
		})
		return
	}

	if h.credits != nil {
		h.credits.RefreshProfile(c.Request.Context())
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewListingView(listing, h.now()), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"listing_id": id,
		"amount":     req.Amount,
	})
}
