package report

import (
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// CampaignStats is the fixed-shape aggregate published on the results page
// and snapshotted with every push.
type CampaignStats struct {
	TotalViews        int     `json:"totalViews"`
	TotalPosts        int     `json:"totalPosts"`
	TotalEngagements  int     `json:"totalEngagements"`
	AvgEngagementRate float64 `json:"avgEngagementRate"`
	TikTokViews       int     `json:"tiktokViews"`
	IGReelViews       int     `json:"igReelViews"`
	StoryViews        int     `json:"storyViews"`
}

// ComputeStats walks the roster once and sums views and engagements per
// platform. AvgEngagementRate is 0 when there are no views, never NaN.
func ComputeStats(roster models.Roster) CampaignStats {
	var stats CampaignStats
	for _, rec := range roster {
		stats.TikTokViews += rec.TikTokViews
		stats.IGReelViews += rec.IGReelViews
		stats.StoryViews += rec.StoryViews()

		stats.TotalEngagements += rec.TikTokLikes + rec.TikTokComments + rec.TikTokShares
		stats.TotalEngagements += rec.IGReelLikes + rec.IGReelComments + rec.IGReelShares

		if rec.HasTikTokActivity() {
			stats.TotalPosts++
		}
		if rec.HasReelActivity() {
			stats.TotalPosts++
		}
		for _, slot := range rec.Stories {
			stats.TotalEngagements += slot.Taps + slot.Replies + slot.Shares
			if slot.Views > 0 {
				stats.TotalPosts++
			}
		}
	}
	stats.TotalViews = stats.TikTokViews + stats.IGReelViews + stats.StoryViews
	if stats.TotalViews > 0 {
		stats.AvgEngagementRate = float64(stats.TotalEngagements) / float64(stats.TotalViews)
	}
	return stats
}
