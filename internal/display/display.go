package display

import (
	"fmt"
	"time"

	model "auction-gateway/internal/models"
)

const day = 24 * time.Hour

// HighestBid returns the largest bid amount on the listing, 0 without bids
func HighestBid(l model.Listing) int {
	highest := 0
	for _, b := range l.Bids {
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	return highest
}

// MinimumBid is the smallest amount that would outbid the current highest
func MinimumBid(l model.Listing) int {
	return HighestBid(l) + 1
}

// IsActive reports whether bidding is still open at now
func IsActive(l model.Listing, now time.Time) bool {
	return now.Before(l.EndsAt)
}

// TimeRemaining formats the time until endsAt, e.g. "2d 3h", "4h 10m", "1m"
func TimeRemaining(endsAt, now time.Time) string {
	diff := endsAt.Sub(now)
	if diff <= 0 {
		return "Auction ended"
	}

	days := int(diff / day)
	hours := int(diff % day / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// TimeLeft is the compact variant used on profile cards
func TimeLeft(endsAt, now time.Time) string {
	diff := endsAt.Sub(now)
	if diff <= 0 {
		return "Ended"
	}

	days := int(diff / day)
	hours := int(diff % day / time.Hour)
	if days > 0 {
		return fmt.Sprintf("%dd %dh left", days, hours)
	}
	return fmt.Sprintf("%dh left", hours)
}

// TimeAgo formats the age of t in whole minutes, hours or days.
// Timestamps ahead of now read as "0m ago".
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff >= day:
		return fmt.Sprintf("%dd ago", int(diff/day))
	case diff >= time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	default:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	}
}
