package roster

import (
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// Field accessor tables drive every merge policy (overwrite, fill-only,
// max-dedup) over the same closed field set, in a fixed order so operator
// reports are deterministic.

type metricField struct {
	name string
	get  func(*models.AthleteRecord) *int
}

type stringField struct {
	name string
	get  func(*models.AthleteRecord) *string
}

var metricFields = []metricField{
	{"tiktokViews", func(r *models.AthleteRecord) *int { return &r.TikTokViews }},
	{"tiktokLikes", func(r *models.AthleteRecord) *int { return &r.TikTokLikes }},
	{"tiktokComments", func(r *models.AthleteRecord) *int { return &r.TikTokComments }},
	{"tiktokShares", func(r *models.AthleteRecord) *int { return &r.TikTokShares }},
	{"igReelViews", func(r *models.AthleteRecord) *int { return &r.IGReelViews }},
	{"igReelLikes", func(r *models.AthleteRecord) *int { return &r.IGReelLikes }},
	{"igReelComments", func(r *models.AthleteRecord) *int { return &r.IGReelComments }},
	{"igReelShares", func(r *models.AthleteRecord) *int { return &r.IGReelShares }},
	{"story1Views", func(r *models.AthleteRecord) *int { return &r.Stories[0].Views }},
	{"story1Taps", func(r *models.AthleteRecord) *int { return &r.Stories[0].Taps }},
	{"story1Replies", func(r *models.AthleteRecord) *int { return &r.Stories[0].Replies }},
	{"story1Shares", func(r *models.AthleteRecord) *int { return &r.Stories[0].Shares }},
	{"story2Views", func(r *models.AthleteRecord) *int { return &r.Stories[1].Views }},
	{"story2Taps", func(r *models.AthleteRecord) *int { return &r.Stories[1].Taps }},
	{"story2Replies", func(r *models.AthleteRecord) *int { return &r.Stories[1].Replies }},
	{"story2Shares", func(r *models.AthleteRecord) *int { return &r.Stories[1].Shares }},
	{"story3Views", func(r *models.AthleteRecord) *int { return &r.Stories[2].Views }},
	{"story3Taps", func(r *models.AthleteRecord) *int { return &r.Stories[2].Taps }},
	{"story3Replies", func(r *models.AthleteRecord) *int { return &r.Stories[2].Replies }},
	{"story3Shares", func(r *models.AthleteRecord) *int { return &r.Stories[2].Shares }},
}

var urlFields = []stringField{
	{"igReelUrl", func(r *models.AthleteRecord) *string { return &r.IGReelURL }},
	{"tiktokPostUrl", func(r *models.AthleteRecord) *string { return &r.TikTokPostURL }},
	{"approvedContentUrl", func(r *models.AthleteRecord) *string { return &r.ApprovedContentURL }},
}

// Contact fields are append-only under automated merges: a non-empty value
// is never erased and never replaced by a merge.
var contactFields = []stringField{
	{"phoneNumber", func(r *models.AthleteRecord) *string { return &r.PhoneNumber }},
	{"instagramHandle", func(r *models.AthleteRecord) *string { return &r.InstagramHandle }},
	{"tiktokHandle", func(r *models.AthleteRecord) *string { return &r.TikTokHandle }},
	{"assignedOperator", func(r *models.AthleteRecord) *string { return &r.AssignedOperator }},
	{"profileImageUrl", func(r *models.AthleteRecord) *string { return &r.ProfileImageURL }},
}
