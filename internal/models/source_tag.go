package models

// SourceTag names the operation that produced a push. The set is closed so
// the push call sites and the version history display can never drift apart.
type SourceTag string

const (
	SourcePerformanceImport SourceTag = "performance-import"
	SourceContactImport     SourceTag = "contact-import"
	SourceTikTokRefresh     SourceTag = "tiktok-refresh"
	SourceInstagramRefresh  SourceTag = "instagram-refresh"
	SourceManualSave        SourceTag = "manual-save"
	SourceMockFill          SourceTag = "mock-fill"
	SourceDedupe            SourceTag = "dedupe"
	SourceBaselinePurge     SourceTag = "baseline-purge"
	SourceRestore           SourceTag = "restore"
)

var sourceTagLabels = map[SourceTag]string{
	SourcePerformanceImport: "Performance import",
	SourceContactImport:     "Contact import",
	SourceTikTokRefresh:     "TikTok refresh",
	SourceInstagramRefresh:  "Instagram refresh",
	SourceManualSave:        "Manual save",
	SourceMockFill:          "Mock data fill",
	SourceDedupe:            "Duplicate cleanup",
	SourceBaselinePurge:     "Baseline purge",
	SourceRestore:           "Version restore",
}

func (t SourceTag) Valid() bool {
	_, ok := sourceTagLabels[t]
	return ok
}

// Label returns the operator-facing name of the tag for history views.
func (t SourceTag) Label() string {
	if label, ok := sourceTagLabels[t]; ok {
		return label
	}
	return string(t)
}
