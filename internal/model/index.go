package model

// PapersStructure maps side title -> group key -> papers.
// Order inside is not meaningful until the structure has been sorted.
type PapersStructure map[string]map[string][]*Paper

// Add appends p under its side title and group key.
func (ps PapersStructure) Add(p *Paper) {
	groups, ok := ps[p.SideTitle]
	if !ok {
		groups = make(map[string][]*Paper)
		ps[p.SideTitle] = groups
	}
	groups[p.GroupKey] = append(groups[p.GroupKey], p)
}

// Len returns the total number of papers in the structure.
func (ps PapersStructure) Len() int {
	n := 0
	for _, groups := range ps {
		for _, papers := range groups {
			n += len(papers)
		}
	}
	return n
}

// Index is a fully ordered PapersStructure.
type Index struct {
	Sections []Section
}

// Section holds the groups under one side title.
type Section struct {
	SideTitle string
	Groups    []Group
}

// Group is a set of papers sharing a group key.
type Group struct {
	Key    string
	Papers []*Paper
}

// Element names used in the output document.
const (
	RootElement      = "PapersIndex"
	SideTitleElement = "SideTitle"
	PaperElement     = "Paper"
)

// Element is one labelled text node in the output document.
type Element struct {
	Name string
	Text string
}

// Document is the serialized index: a flat, ordered run of side titles and entries.
type Document struct {
	Elements []Element
}

// Entries counts the Paper elements in the document.
func (d Document) Entries() int {
	n := 0
	for _, e := range d.Elements {
		if e.Name == PaperElement {
			n++
		}
	}
	return n
}
