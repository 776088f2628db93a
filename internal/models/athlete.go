package models

import (
	"fmt"
	"strings"
)

// CampaignType is fixed at record creation. Video athletes are expected to
// deliver a TikTok-or-Reel post plus a story, story athletes deliver story
// content only.
type CampaignType string

const (
	CampaignVideo CampaignType = "video"
	CampaignStory CampaignType = "story"
)

// StorySlot holds the metrics of one Instagram story posting.
type StorySlot struct {
	Views   int `json:"views"`
	Taps    int `json:"taps"`
	Replies int `json:"replies"`
	Shares  int `json:"shares"`
}

func (s StorySlot) Empty() bool {
	return s.Views == 0 && s.Taps == 0 && s.Replies == 0 && s.Shares == 0
}

// AthleteRecord is one roster entry. A metric value of 0 doubles as
// "not yet fetched"; there is no separate null state for metrics.
type AthleteRecord struct {
	ID               string       `json:"id"`
	DisplayName      string       `json:"displayName"`
	PhoneNumber      string       `json:"phoneNumber"`
	InstagramHandle  string       `json:"instagramHandle"`
	TikTokHandle     string       `json:"tiktokHandle"`
	AssignedOperator string       `json:"assignedOperator"`
	ProfileImageURL  string       `json:"profileImageUrl"`
	CampaignType     CampaignType `json:"campaignType"`

	IGReelURL          string `json:"igReelUrl"`
	TikTokPostURL      string `json:"tiktokPostUrl"`
	ApprovedContentURL string `json:"approvedContentUrl"`

	TikTokViews    int `json:"tiktokViews"`
	TikTokLikes    int `json:"tiktokLikes"`
	TikTokComments int `json:"tiktokComments"`
	TikTokShares   int `json:"tiktokShares"`

	IGReelViews    int `json:"igReelViews"`
	IGReelLikes    int `json:"igReelLikes"`
	IGReelComments int `json:"igReelComments"`
	IGReelShares   int `json:"igReelShares"`

	Stories [3]StorySlot `json:"stories"`

	// HasMockData marks metrics that were synthetically estimated rather
	// than observed. Cleared only by a real data write.
	HasMockData bool `json:"hasMockData"`
}

func (a AthleteRecord) HasTikTokActivity() bool {
	return a.TikTokPostURL != "" || a.TikTokViews > 0
}

func (a AthleteRecord) HasReelActivity() bool {
	return a.IGReelURL != "" || a.IGReelViews > 0
}

func (a AthleteRecord) HasStoryActivity() bool {
	for _, s := range a.Stories {
		if !s.Empty() {
			return true
		}
	}
	return false
}

func (a AthleteRecord) StoryViews() int {
	total := 0
	for _, s := range a.Stories {
		total += s.Views
	}
	return total
}

// Roster is the full set of athlete records for one campaign deployment.
// Order carries no meaning; the dashboard sorts for display.
type Roster []AthleteRecord

func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

func (r Roster) FindByID(id string) (AthleteRecord, bool) {
	for _, rec := range r {
		if rec.ID == id {
			return rec, true
		}
	}
	return AthleteRecord{}, false
}

const placeholderNamePrefix = "Athlete #"

// IsPlaceholderName reports whether a display name is one of the synthetic
// names generated for an empty roster.
func IsPlaceholderName(name string) bool {
	return strings.HasPrefix(strings.TrimSpace(name), placeholderNamePrefix)
}

// HasRealNames reports whether at least one record carries an operator- or
// import-provided display name. A remote roster with only placeholders is
// treated as empty during load.
func (r Roster) HasRealNames() bool {
	for _, rec := range r {
		name := strings.TrimSpace(rec.DisplayName)
		if name != "" && !IsPlaceholderName(name) {
			return true
		}
	}
	return false
}

// PlaceholderRoster builds a synthetic roster so the dashboard can render
// before any real data exists. Placeholder records are purged by the
// baseline filter and never adopted from the remote store.
func PlaceholderRoster(n int, campaignType CampaignType) Roster {
	out := make(Roster, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, AthleteRecord{
			ID:           fmt.Sprintf("placeholder-%02d", i),
			DisplayName:  fmt.Sprintf("%s%d", placeholderNamePrefix, i),
			CampaignType: campaignType,
		})
	}
	return out
}
