package roster

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// ImportRow is one already-parsed spreadsheet row. CSV tokenizing and
// quoting are an upstream concern; the merge engine only requires a row
// identity (name, optionally phone) plus whatever fields the sheet carried.
// Data reuses the record shape; its ID and CampaignType are ignored.
type ImportRow struct {
	Name  string
	Phone string
	Data  models.AthleteRecord
}

func (r ImportRow) identityMissing() bool {
	return strings.TrimSpace(r.Name) == "" && NormalizePhone(r.Phone) == ""
}

// columnAliases maps the header spellings seen across the source
// spreadsheets onto canonical field names. Headers are matched after
// lowercasing and whitespace/underscore collapsing.
var columnAliases = map[string]string{
	"name":         "name",
	"athlete":      "name",
	"athlete name": "name",
	"display name": "name",

	"phone":        "phone",
	"phone number": "phone",

	"instagram":        "instagramHandle",
	"instagram handle": "instagramHandle",
	"ig handle":        "instagramHandle",

	"tiktok":        "tiktokHandle",
	"tiktok handle": "tiktokHandle",

	"operator":          "assignedOperator",
	"assigned operator": "assignedOperator",

	"profile image":     "profileImageUrl",
	"profile image url": "profileImageUrl",

	"reel url":     "igReelUrl",
	"ig reel url":  "igReelUrl",
	"reel link":    "igReelUrl",
	"tiktok url":   "tiktokPostUrl",
	"tiktok post":  "tiktokPostUrl",
	"tiktok link":  "tiktokPostUrl",
	"content url":  "approvedContentUrl",
	"approved url": "approvedContentUrl",
}

func canonicalColumn(header string) string {
	key := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(header, "_", " ")), " "))
	if canonical, ok := columnAliases[key]; ok {
		return canonical
	}
	return key
}

// ParseRows converts field-name-keyed row maps into ImportRows. Metric
// columns coerce tolerantly ("1,204" and "1204" both parse); a cell that
// cannot be coerced is treated as absent rather than failing the row.
func ParseRows(raw []map[string]string) []ImportRow {
	rows := make([]ImportRow, 0, len(raw))
	for _, cells := range raw {
		row := ImportRow{}
		for header, value := range cells {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			switch col := canonicalColumn(header); col {
			case "name":
				row.Name = value
				row.Data.DisplayName = value
			case "phone":
				row.Phone = value
				row.Data.PhoneNumber = value
			default:
				if !assignString(&row.Data, col, value) {
					assignMetric(&row.Data, col, value)
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func assignString(rec *models.AthleteRecord, column, value string) bool {
	for _, f := range contactFields {
		if f.name == column {
			*f.get(rec) = value
			return true
		}
	}
	for _, f := range urlFields {
		if f.name == column {
			*f.get(rec) = value
			return true
		}
	}
	return false
}

func assignMetric(rec *models.AthleteRecord, column, value string) {
	for _, f := range metricFields {
		if !strings.EqualFold(f.name, normalizeMetricColumn(column)) {
			continue
		}
		n := cast.ToInt(strings.ReplaceAll(value, ",", ""))
		if n > 0 {
			*f.get(rec) = n
		}
		return
	}
}

// normalizeMetricColumn folds "tiktok views" / "story 1 views" style headers
// onto the camelCase field names of the accessor tables.
func normalizeMetricColumn(column string) string {
	words := strings.Fields(column)
	if len(words) == 0 {
		return column
	}
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		// digit chunks ("story 1") glue to the previous word
		if w[0] >= '0' && w[0] <= '9' {
			b.WriteString(w)
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]) + strings.ToLower(w[1:]))
	}
	return b.String()
}
