package listings

import (
	"strings"
	"time"

	"auction-gateway/internal/auctionerrors"
	"auction-gateway/internal/display"
	model "auction-gateway/internal/models"
)

// DefaultMediaAlt is used when neither alt text nor a title is available
const DefaultMediaAlt = "Listing image"

// ValidateAmount rejects a bid amount that is not a positive number
func ValidateAmount(amount int) error {
	if amount <= 0 {
		return auctionerrors.Invalid(auctionerrors.ErrInvalidBid, "Please enter a valid bid amount")
	}
	return nil
}

// ValidateBid rejects a bid the upstream would refuse anyway
func ValidateBid(l model.Listing, amount int, now time.Time) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !display.IsActive(l, now) {
		return auctionerrors.Invalid(auctionerrors.ErrAuctionEnded, "This auction has ended")
	}
	if highest := display.HighestBid(l); amount <= highest {
		return auctionerrors.Invalid(auctionerrors.ErrBidTooLow, "Bid must be higher than current highest bid (%d credits)", highest)
	}
	return nil
}

// NormalizeCreate validates a new listing and cleans its free-form fields
func NormalizeCreate(data model.CreateListingData, now time.Time) (model.CreateListingData, error) {
	data.Title = strings.TrimSpace(data.Title)
	data.Description = strings.TrimSpace(data.Description)

	if data.Title == "" {
		return data, auctionerrors.Invalid(auctionerrors.ErrInvalidListing, "Title is required")
	}
	if data.EndsAt.IsZero() {
		return data, auctionerrors.Invalid(auctionerrors.ErrInvalidListing, "End date is required")
	}
	if !data.EndsAt.After(now) {
		return data, auctionerrors.Invalid(auctionerrors.ErrInvalidListing, "End date must be in the future")
	}

	data.Tags = NormalizeTags(data.Tags)
	media, err := normalizeMedia(data.Media, data.Title)
	if err != nil {
		return data, err
	}
	data.Media = media
	return data, nil
}

// NormalizeUpdate validates the fields present in a partial update
func NormalizeUpdate(data model.UpdateListingData) (model.UpdateListingData, error) {
	fallbackAlt := ""
	if data.Title != nil {
		title := strings.TrimSpace(*data.Title)
		if title == "" {
			return data, auctionerrors.Invalid(auctionerrors.ErrInvalidListing, "Title is required")
		}
		data.Title = &title
		fallbackAlt = title
	}
	if data.Description != nil {
		desc := strings.TrimSpace(*data.Description)
		data.Description = &desc
	}

	data.Tags = NormalizeTags(data.Tags)
	media, err := normalizeMedia(data.Media, fallbackAlt)
	if err != nil {
		return data, err
	}
	data.Media = media
	return data, nil
}

// NormalizeTags trims and lower-cases tags, dropping blanks and duplicates.
// Nil when nothing remains so the field is omitted upstream.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func normalizeMedia(media []model.Media, title string) ([]model.Media, error) {
	var out []model.Media
	for _, m := range media {
		m.URL = strings.TrimSpace(m.URL)
		m.Alt = strings.TrimSpace(m.Alt)
		if m.URL == "" {
			return nil, auctionerrors.Invalid(auctionerrors.ErrInvalidListing, "Media URL is required")
		}
		if m.Alt == "" {
			m.Alt = title
		}
		if m.Alt == "" {
			m.Alt = DefaultMediaAlt
		}
		out = append(out, m)
	}
	return out, nil
}
