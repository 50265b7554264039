package index

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"github.com/Veraticus/papers-index/internal/model"
)

// unprioritised is the rank of groups that match no entry in groupPriorities.
const unprioritised = 100

// groupPriorities ranks groups by key prefix. Entries are checked in order,
// so a longer prefix must come before any shorter prefix it starts with.
var groupPriorities = []struct {
	prefix string
	rank   int
}{
	{"Draft Order", 1},
	{"Order of Council", 3},
	{"Orders of Council", 3},
	{"Order", 2},
	{"Draft Regulations", 4},
	{"Regulations (Northern Ireland)", 5},
	{"Regulations", 6},
	{"Rules", 7},
	{"Accounts", 8},
	{"Report and Accounts", 9},
	{"Reports and Accounts", 9},
}

// GroupRank returns the editorial rank of a group key; lower sorts first.
func GroupRank(key string) int {
	for _, p := range groupPriorities {
		if strings.HasPrefix(key, p.prefix) {
			return p.rank
		}
	}
	return unprioritised
}

// compareGroups orders group keys by rank, then by plain string comparison.
func compareGroups(a, b string) int {
	if c := cmp.Compare(GroupRank(a), GroupRank(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// compareSideTitles orders side titles ignoring case, falling back to the raw
// strings so the order is total.
func compareSideTitles(a, b string) int {
	if c := strings.Compare(strings.ToUpper(a), strings.ToUpper(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Sort orders side titles, the groups under each side title, and the papers
// within each group. The input structure is not modified.
func Sort(structure model.PapersStructure) model.Index {
	sideTitles := make([]string, 0, len(structure))
	for sideTitle := range structure {
		sideTitles = append(sideTitles, sideTitle)
	}
	slices.SortFunc(sideTitles, compareSideTitles)

	idx := model.Index{Sections: make([]model.Section, 0, len(sideTitles))}
	for _, sideTitle := range sideTitles {
		groups := structure[sideTitle]

		keys := make([]string, 0, len(groups))
		for key := range groups {
			keys = append(keys, key)
		}
		slices.SortFunc(keys, compareGroups)

		section := model.Section{SideTitle: sideTitle, Groups: make([]model.Group, 0, len(keys))}
		for _, key := range keys {
			section.Groups = append(section.Groups, model.Group{
				Key:    key,
				Papers: sortPapers(sideTitle, key, groups[key]),
			})
		}
		idx.Sections = append(idx.Sections, section)
	}

	return idx
}

// sortPapers returns a stably sorted copy of papers, ordered by sort key.
func sortPapers(sideTitle, key string, papers []*model.Paper) []*model.Paper {
	type keyed struct {
		paper *model.Paper
		key   string
	}

	decorated := make([]keyed, len(papers))
	for i, p := range papers {
		decorated[i] = keyed{paper: p, key: p.SortKey()}
	}
	slices.SortStableFunc(decorated, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})

	sorted := make([]*model.Paper, len(decorated))
	for i, d := range decorated {
		sorted[i] = d.paper
		if i > 0 && d.key == decorated[i-1].key {
			slog.Warn("Possible duplicate index entry",
				"side_title", sideTitle,
				"group", key,
				"paper_id", d.paper.ID,
				"previous_paper_id", decorated[i-1].paper.ID)
		}
	}

	return sorted
}
