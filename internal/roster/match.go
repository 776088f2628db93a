package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/models"
)

// NormalizeName case-folds a display name and collapses internal whitespace
// so "jo  LEE" and "Jo Lee" share one identity.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// NormalizePhone strips everything but digits. Phone numbers are less prone
// to typos than names, so a phone match wins over a name match.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TitleCaseName renders a normalized name for display ("jo lee" -> "Jo Lee").
func TitleCaseName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		if first == utf8.RuneError && size <= 1 {
			continue
		}
		words[i] = string(unicode.ToTitle(first)) + w[size:]
	}
	return strings.Join(words, " ")
}

// rosterIndex resolves import rows against roster positions by normalized
// phone number first, normalized name second.
type rosterIndex struct {
	byPhone map[string]int
	byName  map[string]int
}

func indexRoster(r models.Roster) *rosterIndex {
	idx := &rosterIndex{
		byPhone: make(map[string]int, len(r)),
		byName:  make(map[string]int, len(r)),
	}
	for i, rec := range r {
		idx.put(rec, i)
	}
	return idx
}

func (idx *rosterIndex) put(rec models.AthleteRecord, pos int) {
	if phone := NormalizePhone(rec.PhoneNumber); phone != "" {
		if _, taken := idx.byPhone[phone]; !taken {
			idx.byPhone[phone] = pos
		}
	}
	if name := NormalizeName(rec.DisplayName); name != "" {
		if _, taken := idx.byName[name]; !taken {
			idx.byName[name] = pos
		}
	}
}

// lookup returns the roster position for a row identity, or -1.
func (idx *rosterIndex) lookup(name, phone string) int {
	if p := NormalizePhone(phone); p != "" {
		if pos, ok := idx.byPhone[p]; ok {
			return pos
		}
	}
	if n := NormalizeName(name); n != "" {
		if pos, ok := idx.byName[n]; ok {
			return pos
		}
	}
	return -1
}
