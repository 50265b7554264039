package index

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/papers-index/internal/model"
)

var (
	// Titles with these prefixes are never grouped.
	ungroupedPrefixes = []string{"Explanatory Memorandum", "Impact Assessment"}

	northernIrelandRegs = regexp.MustCompile(`(Regulations \(Northern Ireland\)) ([12]\d\d\d)`)

	// A year or year range at the end of a title, optionally followed by a
	// short parenthetical such as "(laid 12 July)".
	trailingYear = regexp.MustCompile(`([12]\d\d\d(?:-\d\d)? ?(?:\([A-Za-z0-9 ]*\))?)$`)
)

// Classifier assigns papers to groups using an ordered list of rules.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier. With no rules it uses DefaultRules.
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify sets p.GroupKey and rewrites p.Title to drop the matched token.
// A paper that already has a group key is left alone.
func (c *Classifier) Classify(p *model.Paper) string {
	if p.GroupKey != "" {
		return p.GroupKey
	}

	var rule string
	p.GroupKey, rule = c.groupKey(p)
	addWordFor(p)

	slog.Debug("Classified paper", "paper_id", p.ID, "rule", rule, "group", p.GroupKey, "title", p.Title)

	return p.GroupKey
}

// Group classifies every paper and collects them by side title and group key.
func (c *Classifier) Group(papers []*model.Paper) model.PapersStructure {
	structure := make(model.PapersStructure)
	for _, p := range papers {
		c.Classify(p)
		structure.Add(p)
	}
	return structure
}

// groupKey returns the paper's group key and the name of the rule that
// produced it, "" when the paper is not grouped.
func (c *Classifier) groupKey(p *model.Paper) (string, string) {
	if isUngrouped(p.Title) {
		return model.OtherPapers, ""
	}

	if key, ok := northernIrelandKey(p); ok {
		return key, "regulations-northern-ireland"
	}

	for _, rule := range c.rules {
		if !rule.Pattern.MatchString(p.Title) {
			continue
		}

		key := rule.BaseKey
		if p.IsDraft {
			key = "Draft " + key
		}
		if p.Year != "" {
			key += p.Year + ": "
		}

		p.Title = strings.TrimSpace(rule.Pattern.ReplaceAllString(p.Title, ""))
		if p.Year != "" && strings.HasSuffix(p.Title, p.Year) {
			p.Title = strings.TrimSpace(strings.TrimSuffix(p.Title, p.Year))
		}

		return key, rule.Name
	}

	return model.OtherPapers, ""
}

func isUngrouped(title string) bool {
	for _, prefix := range ungroupedPrefixes {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}

// northernIrelandKey groups NI regulations by the year in the title rather
// than the paper's year field. Draft status is not part of these keys.
func northernIrelandKey(p *model.Paper) (string, bool) {
	m := northernIrelandRegs.FindStringSubmatch(p.Title)
	if m == nil {
		return "", false
	}
	p.Title = strings.TrimSpace(northernIrelandRegs.ReplaceAllString(p.Title, ""))
	return m[1] + ": " + m[2] + ": ", true
}

// addWordFor turns "Fund 2015-16" into "Fund for 2015-16" when the year was
// not part of the paper's own title.
func addWordFor(p *model.Paper) {
	if p.RawTitle == p.SubjectHeading {
		return
	}

	m := trailingYear.FindString(p.Title)
	if m == "" || strings.Contains(p.RawTitle, m) {
		return
	}

	p.Title = trailingYear.ReplaceAllString(p.Title, "for ${1}")
}
