package index

import (
	"log/slog"
	"strings"

	"github.com/Veraticus/papers-index/internal/model"
)

// plurals are applied in order; only the first matching prefix is replaced.
var plurals = []struct {
	singular string
	plural   string
}{
	{"Draft Order: ", "Draft Orders: "},
	{"Order: ", "Orders: "},
	{"Order of Council", "Orders of Council"},
	{"Report of the Independent Chief Inspector of Borders and Immigration", "Reports of the Independent Chief Inspector of Borders and Immigration"},
	{"Report by the Comptroller and Auditor General", "Reports by the Comptroller and Auditor General"},
	{"Report of the Law Commission", "Reports of the Law Commission"},
}

// Pluralize rewrites a group label for a group holding more than one paper.
func Pluralize(label string) string {
	for _, p := range plurals {
		if strings.HasPrefix(label, p.singular) {
			return p.plural + strings.TrimPrefix(label, p.singular)
		}
	}
	return label
}

// Serialize renders a sorted index as a flat run of side titles and entries.
func Serialize(idx model.Index) model.Document {
	var doc model.Document

	for _, section := range idx.Sections {
		doc.Elements = append(doc.Elements, model.Element{Name: model.SideTitleElement, Text: section.SideTitle})

		for _, group := range section.Groups {
			if len(group.Papers) == 0 {
				slog.Warn("Skipping empty group", "side_title", section.SideTitle, "group", group.Key)
				continue
			}

			if group.Key == model.OtherPapers {
				for _, p := range group.Papers {
					doc.Elements = append(doc.Elements, model.Element{Name: model.PaperElement, Text: p.IndexEntry() + "."})
				}
				continue
			}

			doc.Elements = append(doc.Elements, model.Element{Name: model.PaperElement, Text: groupEntry(group)})
		}
	}

	return doc
}

// groupEntry merges a group into one entry: "<label><entry>; <entry>."
func groupEntry(group model.Group) string {
	label := model.EnDashRanges(group.Key)
	if len(group.Papers) > 1 {
		label = Pluralize(label)
	}

	entries := make([]string, len(group.Papers))
	for i, p := range group.Papers {
		entries[i] = p.IndexEntry()
	}

	return label + strings.Join(entries, "; ") + "."
}
