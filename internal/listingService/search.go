package listings

import (
	"context"
	"sort"
	"strings"

	model "auction-gateway/internal/models"
)

// DefaultPageSize is the browse page size
const DefaultPageSize = 50

// Sort keys and orders accepted by Browse
const (
	SortCreated = "created"
	SortEndsAt  = "endsAt"
	SortTitle   = "title"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// BrowseQuery is the search page state
type BrowseQuery struct {
	Query     string
	Tag       string
	Sort      string
	SortOrder string
	Page      int
	Limit     int
}

// BrowseResult is one page of browse results plus derived paging data
type BrowseResult struct {
	Listings      []model.Listing `json:"listings"`
	Meta          model.Meta      `json:"meta"`
	HasMore       bool            `json:"hasMore"`
	AvailableTags []string        `json:"availableTags"`
}

func (q BrowseQuery) withDefaults() BrowseQuery {
	q.Query = strings.TrimSpace(q.Query)
	switch q.Sort {
	case SortCreated, SortEndsAt, SortTitle:
	default:
		q.Sort = SortCreated
	}
	if q.SortOrder != OrderAsc {
		q.SortOrder = OrderDesc
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	return q
}

// Browse serves the search page. A query goes to the search endpoint and is
// tag-filtered and sorted locally; otherwise the listings endpoint does both.
func (s *ListingService) Browse(ctx context.Context, q BrowseQuery) (BrowseResult, error) {
	q = q.withDefaults()

	var (
		resp model.Envelope[[]model.Listing]
		err  error
	)
	if q.Query != "" {
		resp, err = s.SearchListings(ctx, q.Query, PageQuery{Include: Full, Page: q.Page, Limit: q.Limit})
		if err != nil {
			return BrowseResult{}, err
		}
		resp.Data = FilterByTag(resp.Data, q.Tag)
		SortListings(resp.Data, q.Sort, q.SortOrder)
	} else {
		resp, err = s.GetAllListings(ctx, ListingQuery{
			Include:   Full,
			Page:      q.Page,
			Limit:     q.Limit,
			Active:    true,
			Tag:       q.Tag,
			Sort:      q.Sort,
			SortOrder: q.SortOrder,
		})
		if err != nil {
			return BrowseResult{}, err
		}
	}

	listings := resp.Data
	if listings == nil {
		listings = []model.Listing{}
	}
	return BrowseResult{
		Listings:      listings,
		Meta:          resp.Meta,
		HasMore:       resp.Meta.NextPage != nil && len(listings) == q.Limit,
		AvailableTags: AvailableTags(listings),
	}, nil
}

// FilterByTag keeps listings carrying tag; an empty tag keeps everything.
// It only narrows, never adds.
func FilterByTag(listings []model.Listing, tag string) []model.Listing {
	if tag == "" {
		return listings
	}
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if l.HasTag(tag) {
			out = append(out, l)
		}
	}
	return out
}

// SortListings sorts in place by key and order; equal keys keep their order
func SortListings(listings []model.Listing, key, order string) {
	less := func(a, b model.Listing) bool {
		switch key {
		case SortEndsAt:
			return a.EndsAt.Before(b.EndsAt)
		case SortTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		default:
			return a.Created.Before(b.Created)
		}
	}

	sort.SliceStable(listings, func(i, j int) bool {
		if order == OrderAsc {
			return less(listings[i], listings[j])
		}
		return less(listings[j], listings[i])
	})
}

// AvailableTags returns the sorted distinct tags of the page
func AvailableTags(listings []model.Listing) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, l := range listings {
		for _, t := range l.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}
