package report

import (
	"fmt"
	"math"
)

// ValueFormat tells the notification layer how to render a changed value.
type ValueFormat string

const (
	FormatCount   ValueFormat = "count"
	FormatPercent ValueFormat = "percent"
)

// rateTolerance filters floating-point noise on the engagement rate so a
// re-push of identical data never produces a spurious notification.
const rateTolerance = 0.01

// StatChange is one field-level delta between two stat aggregates.
type StatChange struct {
	Field  string      `json:"field"`
	Old    float64     `json:"old"`
	New    float64     `json:"new"`
	Format ValueFormat `json:"format"`
}

func (c StatChange) String() string {
	if c.Format == FormatPercent {
		return fmt.Sprintf("%s: %.2f%% -> %.2f%%", c.Field, c.Old*100, c.New*100)
	}
	return fmt.Sprintf("%s: %d -> %d", c.Field, int(c.Old), int(c.New))
}

// Diff compares two stat aggregates field by field and emits an entry only
// for fields that actually differ. Counts compare exactly; the engagement
// rate uses an absolute tolerance.
func Diff(before, after CampaignStats) []StatChange {
	changes := make([]StatChange, 0, 7)
	appendCount := func(field string, old, now int) {
		if old != now {
			changes = append(changes, StatChange{Field: field, Old: float64(old), New: float64(now), Format: FormatCount})
		}
	}

	appendCount("totalViews", before.TotalViews, after.TotalViews)
	appendCount("totalPosts", before.TotalPosts, after.TotalPosts)
	appendCount("totalEngagements", before.TotalEngagements, after.TotalEngagements)
	if math.Abs(after.AvgEngagementRate-before.AvgEngagementRate) > rateTolerance {
		changes = append(changes, StatChange{
			Field:  "avgEngagementRate",
			Old:    before.AvgEngagementRate,
			New:    after.AvgEngagementRate,
			Format: FormatPercent,
		})
	}
	appendCount("tiktokViews", before.TikTokViews, after.TikTokViews)
	appendCount("igReelViews", before.IGReelViews, after.IGReelViews)
	appendCount("storyViews", before.StoryViews, after.StoryViews)
	return changes
}
