package roster

import (
	"sort"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// Tier is the derived athlete tier: any TikTok or Reel activity makes an
// athlete Featured, story-only activity makes it SubClub. Derived from
// observed content, not from the stored campaign type. This is the single
// classification used everywhere tier matters.
type Tier string

const (
	TierFeatured Tier = "featured"
	TierSubClub  Tier = "subclub"
	TierNone     Tier = "none"
)

func ClassifyTier(rec models.AthleteRecord) Tier {
	if rec.HasTikTokActivity() || rec.HasReelActivity() {
		return TierFeatured
	}
	if rec.HasStoryActivity() {
		return TierSubClub
	}
	return TierNone
}

// effectiveTier falls back to the stored campaign type when a record has no
// activity yet, so completeness checks apply the right requirement set.
func effectiveTier(rec models.AthleteRecord) Tier {
	if tier := ClassifyTier(rec); tier != TierNone {
		return tier
	}
	if rec.CampaignType == models.CampaignStory {
		return TierSubClub
	}
	return TierFeatured
}

// MissingAccount flags a record with a content URL but no matching platform
// handle. The URL cannot be attributed to a verified account.
type MissingAccount struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	MissingInstagram bool   `json:"missingInstagram"`
	MissingTikTok    bool   `json:"missingTiktok"`
}

func MissingAccounts(r models.Roster) []MissingAccount {
	out := []MissingAccount{}
	for _, rec := range r {
		flag := MissingAccount{ID: rec.ID, DisplayName: rec.DisplayName}
		if rec.IGReelURL != "" && rec.InstagramHandle == "" {
			flag.MissingInstagram = true
		}
		if rec.TikTokPostURL != "" && rec.TikTokHandle == "" {
			flag.MissingTikTok = true
		}
		if flag.MissingInstagram || flag.MissingTikTok {
			out = append(out, flag)
		}
	}
	return out
}

// CompletenessEntry lists what one athlete still owes the campaign.
type CompletenessEntry struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Tier        Tier     `json:"tier"`
	Missing     []string `json:"missing"`
}

// CompletenessReport computes the missing-item list per record. The result
// is sorted ascending by number of missing items (most-complete first);
// records with equal counts keep roster order. The ordering is a documented
// contract for the partial-media view.
func CompletenessReport(r models.Roster) []CompletenessEntry {
	out := make([]CompletenessEntry, 0, len(r))
	for _, rec := range r {
		entry := CompletenessEntry{
			ID:          rec.ID,
			DisplayName: rec.DisplayName,
			Tier:        effectiveTier(rec),
			Missing:     []string{},
		}
		switch entry.Tier {
		case TierFeatured:
			if rec.TikTokPostURL == "" && !rec.HasReelActivity() {
				entry.Missing = append(entry.Missing, "video content")
			}
			if rec.Stories[0].Views == 0 {
				entry.Missing = append(entry.Missing, "story views")
			}
			if rec.ProfileImageURL == "" {
				entry.Missing = append(entry.Missing, "profile image")
			}
		case TierSubClub:
			if rec.Stories[0].Views == 0 {
				entry.Missing = append(entry.Missing, "story views")
			}
			if rec.ProfileImageURL == "" {
				entry.Missing = append(entry.Missing, "profile image")
			}
			if rec.ApprovedContentURL == "" {
				entry.Missing = append(entry.Missing, "approved content url")
			}
		}
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Missing) < len(out[j].Missing)
	})
	return out
}
