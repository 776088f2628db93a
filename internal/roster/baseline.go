package roster

import (
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// FilterToBaseline partitions the roster against an authoritative external
// name list: kept records match a baseline name case-insensitively, removed
// is everything else including synthetic placeholders. Pure partition, no
// I/O: the destructive confirmation lives at the caller boundary, and the
// removed set is always returned so the caller can undo by re-import.
func FilterToBaseline(current models.Roster, baselineNames []string) (kept, removed models.Roster) {
	baseline := make(map[string]struct{}, len(baselineNames))
	for _, name := range baselineNames {
		if n := NormalizeName(name); n != "" {
			baseline[n] = struct{}{}
		}
	}

	kept = make(models.Roster, 0, len(current))
	removed = make(models.Roster, 0)
	for _, rec := range current {
		if models.IsPlaceholderName(rec.DisplayName) {
			removed = append(removed, rec)
			continue
		}
		if _, ok := baseline[NormalizeName(rec.DisplayName)]; ok {
			kept = append(kept, rec)
		} else {
			removed = append(removed, rec)
		}
	}
	return kept, removed
}
