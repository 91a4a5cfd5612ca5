package domain

import "time"

// Link is one shortened URL owned by the signed-in user.
// CreatedAt and ExpiresAt are Unix seconds as sent by the backend;
// ExpiresAt of 0 means the link never expires.
type Link struct {
	Code      string `json:"code"`
	URL       string `json:"url"`
	Short     string `json:"short"`
	Clicks    int64  `json:"clicks"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
	TTLActive bool   `json:"ttl_active"`
}

// Expiry returns the expiry as local time, or the zero time for non-expiring links.
func (l Link) Expiry() time.Time {
	if l.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(l.ExpiresAt, 0)
}

// TopURL is one row of the admin analytics leaderboard.
type TopURL struct {
	Code   string `json:"code"`
	Clicks int64  `json:"clicks"`
}

// AnalyticsSummary is the platform-wide view served to administrators.
type AnalyticsSummary struct {
	TotalClicks int64    `json:"totalClicks"`
	TopURLs     []TopURL `json:"topUrls"`
}

// AdminUser is one account row in the administrative user listing.
type AdminUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}
