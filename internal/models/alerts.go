package models

import "slices"

// AlertState holds the roster-level verification alert lists. Dismissal is
// not permanent: a URL that fails again on a later verification pass
// re-surfaces automatically.
type AlertState struct {
	FailedTikTokURLs    []string `json:"failedTiktokUrls"`
	FailedInstagramURLs []string `json:"failedInstagramUrls"`
	DismissedAlerts     []string `json:"dismissedAlerts"`
}

func (a AlertState) Clone() AlertState {
	return AlertState{
		FailedTikTokURLs:    slices.Clone(a.FailedTikTokURLs),
		FailedInstagramURLs: slices.Clone(a.FailedInstagramURLs),
		DismissedAlerts:     slices.Clone(a.DismissedAlerts),
	}
}

// RecordTikTokFailures replaces the TikTok failure list with the outcome of
// the latest verification pass. Failing URLs drop out of the dismissed list
// so they surface again.
func (a *AlertState) RecordTikTokFailures(urls []string) {
	a.FailedTikTokURLs = slices.Clone(urls)
	a.resurface(urls)
}

// RecordInstagramFailures is the Instagram counterpart of
// RecordTikTokFailures.
func (a *AlertState) RecordInstagramFailures(urls []string) {
	a.FailedInstagramURLs = slices.Clone(urls)
	a.resurface(urls)
}

func (a *AlertState) resurface(failed []string) {
	if len(a.DismissedAlerts) == 0 {
		return
	}
	a.DismissedAlerts = slices.DeleteFunc(a.DismissedAlerts, func(dismissed string) bool {
		return slices.Contains(failed, dismissed)
	})
}

// Dismiss acknowledges a failing URL. Idempotent.
func (a *AlertState) Dismiss(url string) {
	if url == "" || slices.Contains(a.DismissedAlerts, url) {
		return
	}
	a.DismissedAlerts = append(a.DismissedAlerts, url)
}

// ActiveTikTok returns the TikTok failures the operator has not dismissed.
func (a AlertState) ActiveTikTok() []string {
	return a.active(a.FailedTikTokURLs)
}

// ActiveInstagram returns the Instagram failures the operator has not
// dismissed.
func (a AlertState) ActiveInstagram() []string {
	return a.active(a.FailedInstagramURLs)
}

func (a AlertState) active(failed []string) []string {
	out := make([]string, 0, len(failed))
	for _, url := range failed {
		if !slices.Contains(a.DismissedAlerts, url) {
			out = append(out, url)
		}
	}
	return out
}
