package scrape

import (
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/roster"
)

// Platform selects which content URL a result batch is matched against.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
)

// PostMetrics is the per-URL metric set a provider returns.
type PostMetrics struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// Result is the contract with the scraping provider. How the provider
// obtained the data, its polling and its auth are not our concern.
type Result struct {
	SuccessfulFetches int                    `json:"successfulFetches"`
	FailedFetches     int                    `json:"failedFetches"`
	FailedURLs        []string               `json:"failedUrls"`
	Metrics           map[string]PostMetrics `json:"metricsPerUrl"`
}

// Apply matches result metrics onto roster records by content URL and
// merges them metrics-only, so operator-entered contact fields survive a
// refresh untouched. Returns the new roster and the matched record count.
func Apply(current models.Roster, res *Result, platform Platform) (models.Roster, int) {
	if res == nil || len(res.Metrics) == 0 {
		return current.Clone(), 0
	}
	out := current.Clone()
	updated := 0

	for i := range out {
		url := out[i].TikTokPostURL
		if platform == PlatformInstagram {
			url = out[i].IGReelURL
		}
		if url == "" {
			continue
		}
		fetched, ok := res.Metrics[url]
		if !ok {
			continue
		}

		imported := models.AthleteRecord{}
		if platform == PlatformTikTok {
			imported.TikTokViews = fetched.Views
			imported.TikTokLikes = fetched.Likes
			imported.TikTokComments = fetched.Comments
			imported.TikTokShares = fetched.Shares
		} else {
			imported.IGReelViews = fetched.Views
			imported.IGReelLikes = fetched.Likes
			imported.IGReelComments = fetched.Comments
			imported.IGReelShares = fetched.Shares
		}
		out[i] = roster.MetricsOnlyMerge(out[i], imported)
		updated++
	}
	return out, updated
}
