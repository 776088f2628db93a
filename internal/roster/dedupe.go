package roster

import (
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// Deduplicate merges records that share a normalized display name into the
// first-seen record. Metric fields take max() per field, never a sum, which
// would double count a re-imported athlete. Contact and URL fields keep the
// first non-empty value. A survivor that absorbed a duplicate gets its name
// title-cased for display; records that matched nothing keep their casing.
// The returned list names the absorbed duplicates for audit logging.
func Deduplicate(current models.Roster) (models.Roster, []string) {
	out := make(models.Roster, 0, len(current))
	seen := make(map[string]int, len(current))
	merged := make(map[string]bool)
	absorbed := []string{}

	for _, rec := range current {
		key := NormalizeName(rec.DisplayName)
		if key == "" {
			out = append(out, rec)
			continue
		}
		pos, dup := seen[key]
		if !dup {
			seen[key] = len(out)
			out = append(out, rec)
			continue
		}

		absorbed = append(absorbed, rec.DisplayName)
		merged[key] = true
		survivor := &out[pos]
		for _, f := range metricFields {
			if v := *f.get(&rec); v > *f.get(survivor) {
				*f.get(survivor) = v
			}
		}
		for _, f := range contactFields {
			if *f.get(survivor) == "" {
				*f.get(survivor) = *f.get(&rec)
			}
		}
		for _, f := range urlFields {
			if *f.get(survivor) == "" {
				*f.get(survivor) = *f.get(&rec)
			}
		}
		if rec.HasMockData {
			survivor.HasMockData = true
		}
	}

	for key := range merged {
		out[seen[key]].DisplayName = TitleCaseName(key)
	}
	return out, absorbed
}
