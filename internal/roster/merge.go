package roster

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// fillReportPreviewCap bounds the per-field change preview surfaced to the
// operator; the full count is always retained.
const fillReportPreviewCap = 25

// ImportOutcome summarizes a high-priority import run.
type ImportOutcome struct {
	RowsProcessed int `json:"rowsProcessed"`
	RowsSkipped   int `json:"rowsSkipped"`
	Matched       int `json:"matched"`
	Added         int `json:"added"`
}

// FillReport is the structured result of a low-priority import. It is
// surfaced verbatim to the operator, so rows are processed in input order
// and the change preview is deterministic.
type FillReport struct {
	TotalRowsProcessed int      `json:"totalRowsProcessed"`
	RowsSkipped        int      `json:"rowsSkipped"`
	AthletesMatched    int      `json:"athletesMatched"`
	FieldsUpdated      int      `json:"fieldsUpdated"`
	Changes            []string `json:"changes"`
	TotalChanges       int      `json:"totalChanges"`
}

// HighPriorityImport merges a source-of-truth record set into the roster.
// For matched rows every metric and URL the import carries overwrites the
// existing value; contact fields stay append-only. Unmatched rows append a
// new record with the given campaign type. A row without any identity is
// skipped and counted, never fatal.
func HighPriorityImport(current models.Roster, rows []ImportRow, campaignType models.CampaignType) (models.Roster, ImportOutcome) {
	out := current.Clone()
	idx := indexRoster(out)
	outcome := ImportOutcome{}

	for _, row := range rows {
		outcome.RowsProcessed++
		if row.identityMissing() {
			outcome.RowsSkipped++
			continue
		}

		pos := idx.lookup(row.Name, row.Phone)
		if pos < 0 {
			rec := row.Data
			rec.ID = uuid.NewString()
			rec.DisplayName = TitleCaseName(row.Name)
			rec.CampaignType = campaignType
			rec.HasMockData = false
			out = append(out, rec)
			idx.put(rec, len(out)-1)
			outcome.Added++
			continue
		}

		rec := &out[pos]
		wroteMetric := false
		for _, f := range metricFields {
			if v := *f.get(&row.Data); v > 0 {
				*f.get(rec) = v
				wroteMetric = true
			}
		}
		for _, f := range urlFields {
			if v := *f.get(&row.Data); v != "" {
				*f.get(rec) = v
			}
		}
		for _, f := range contactFields {
			if v := *f.get(&row.Data); v != "" && *f.get(rec) == "" {
				*f.get(rec) = v
			}
		}
		if wroteMetric {
			// real data write clears the synthetic-metrics flag
			rec.HasMockData = false
		}
		outcome.Matched++
	}
	return out, outcome
}

// LowPriorityImport fills gaps only: a field is written when the existing
// value is empty or zero, never otherwise. Rows that match no athlete are
// counted but do not create records.
func LowPriorityImport(current models.Roster, rows []ImportRow) (models.Roster, FillReport) {
	out := current.Clone()
	idx := indexRoster(out)
	rep := FillReport{Changes: []string{}}

	for _, row := range rows {
		rep.TotalRowsProcessed++
		if row.identityMissing() {
			rep.RowsSkipped++
			continue
		}
		pos := idx.lookup(row.Name, row.Phone)
		if pos < 0 {
			continue
		}
		rec := &out[pos]
		rowUpdates := 0

		record := func(field, value string) {
			rep.FieldsUpdated++
			rep.TotalChanges++
			rowUpdates++
			if len(rep.Changes) < fillReportPreviewCap {
				rep.Changes = append(rep.Changes, fmt.Sprintf("%s: %s set to %s", rec.DisplayName, field, value))
			}
		}

		for _, f := range contactFields {
			if v := *f.get(&row.Data); v != "" && *f.get(rec) == "" {
				*f.get(rec) = v
				record(f.name, v)
			}
		}
		for _, f := range urlFields {
			if v := *f.get(&row.Data); v != "" && *f.get(rec) == "" {
				*f.get(rec) = v
				record(f.name, v)
			}
		}
		for _, f := range metricFields {
			if v := *f.get(&row.Data); v > 0 && *f.get(rec) == 0 {
				*f.get(rec) = v
				record(f.name, fmt.Sprintf("%d", v))
			}
		}
		if rowUpdates > 0 {
			rep.AthletesMatched++
		}
	}
	return out, rep
}

// MetricsOnlyMerge copies the metric fields the imported record carries into
// a copy of the existing record. Every contact field keeps the existing
// value regardless of what the import holds. Used by scrape-refresh flows.
func MetricsOnlyMerge(existing, imported models.AthleteRecord) models.AthleteRecord {
	out := existing
	wrote := false
	for _, f := range metricFields {
		if v := *f.get(&imported); v > 0 {
			*f.get(&out) = v
			wrote = true
		}
	}
	if wrote {
		out.HasMockData = false
	}
	return out
}
