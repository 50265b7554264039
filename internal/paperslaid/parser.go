// Package paperslaid reads the daily papers-laid feed.
package paperslaid

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/papers-index/internal/common"
	"github.com/Veraticus/papers-index/internal/model"
	"github.com/antchfx/xmlquery"
)

// CommonsPapers selects every paper with a Commons laying date.
const CommonsPapers = "/ArrayOfDailyPapers/DailyPapers/*/Paper[DateLaidCommons[text()]]"

// ParseDailyPapers returns the Commons papers in r in document order.
func ParseDailyPapers(r io.Reader) ([]model.RawRecord, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}
	if xmlquery.FindOne(doc, "/ArrayOfDailyPapers") == nil {
		return nil, fmt.Errorf("%w: missing ArrayOfDailyPapers root", common.ErrInvalidInput)
	}

	nodes, err := xmlquery.QueryAll(doc, CommonsPapers)
	if err != nil {
		return nil, fmt.Errorf("failed to select papers: %w", err)
	}

	records := make([]model.RawRecord, 0, len(nodes))
	for _, n := range nodes {
		records = append(records, model.RawRecord{
			ID:              childText(n, "Id"),
			SideTitle:       childText(n, "SideTitle"),
			Title:           childText(n, "Title"),
			SubjectHeading:  childText(n, "SubjectHeading"),
			Draft:           childText(n, "Draft"),
			Year:            childText(n, "Year"),
			DateLaidCommons: childText(n, "DateLaidCommons"),
			DateWithdrawn:   childText(n, "DateWithdrawn"),
		})
	}

	return records, nil
}

func childText(n *xmlquery.Node, name string) string {
	child := n.SelectElement(name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.InnerText())
}

type rawFeed struct {
	XMLName xml.Name   `xml:"ArrayOfDailyPapers"`
	Days    []rawDaily `xml:"DailyPapers"`
}

type rawDaily struct {
	Papers []model.RawRecord `xml:"Papers>Paper"`
}

// WriteRaw writes records in the feed's own shape so they can be read back
// with ParseDailyPapers.
func WriteRaw(w io.Writer, records []model.RawRecord) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write raw papers: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(rawFeed{Days: []rawDaily{{Papers: records}}}); err != nil {
		return fmt.Errorf("failed to write raw papers: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write raw papers: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}
