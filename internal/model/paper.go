// Package model defines the core data structures for the papers index.
package model

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// OtherPapers is the group key for papers that match no grouping rule.
// These are rendered one entry per paper instead of merged.
const OtherPapers = "[other papers]"

// DisplayDateLayout is the Journal date format, e.g. "3 Feb 2017".
const DisplayDateLayout = "2 Jan 2006"

const enDash = "–"

var (
	spaceRun   = regexp.MustCompile(`\s+`)
	laidSuffix = regexp.MustCompile(` ?\(laid \d\d? [A-Za-z]{3,11} ?[0-9]{0,5}\)`)
)

// Paper is a normalized paper ready for classification.
type Paper struct {
	ID                 string
	SideTitle          string
	RawTitle           string
	SubjectHeading     string
	Title              string
	Year               string // hyphenated form, kept for suffix matching
	InputDateLaid      string
	InputDateWithdrawn string
	DateLaid           string
	DateWithdrawn      string
	GroupKey           string
	IsDraft            bool
}

// Clean trims s and collapses internal whitespace to single spaces.
func Clean(s string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// WithdrawnAnnotation returns "[withdrawn, D Mon YYYY]" or "" if the paper was not withdrawn.
func (p *Paper) WithdrawnAnnotation() string {
	if p.DateWithdrawn == "" {
		return ""
	}
	return "[withdrawn, " + p.DateWithdrawn + "]"
}

// IndexEntry is the text for this paper in the index, before group concatenation.
func (p *Paper) IndexEntry() string {
	entry := strings.TrimSpace(p.Title) + ", " + p.DateLaid + " " + p.WithdrawnAnnotation()
	return EnDashRanges(strings.Trim(entry, ", "))
}

// SortKey is the key papers within a group are ordered by.
// A "(laid ...)" note and a leading "the " do not take part in the ordering.
func (p *Paper) SortKey() string {
	title := laidSuffix.ReplaceAllString(cases.Fold().String(strings.TrimSpace(p.Title)), "")
	key := strings.Trim(title+", "+p.InputDateLaid+" "+p.WithdrawnAnnotation(), ", ")
	return strings.TrimPrefix(key, "the ")
}

// EnDashRanges replaces every hyphen sitting between two digits with an en-dash.
func EnDashRanges(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if r == '-' && i > 0 && i < len(runes)-1 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
			b.WriteString(enDash)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
