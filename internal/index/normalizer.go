// Package index turns raw paper records into the ordered, grouped papers index.
//
// The stages run in a fixed order: Deduplicate, Normalize, Classify, Sort and
// Serialize. Each stage is synchronous and consumes only the previous stage's
// output. Builder runs the whole pipeline.
package index

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/papers-index/internal/model"
	"github.com/Veraticus/papers-index/internal/service"
)

const inputDateLayout = "2006-01-02"

// Normalizer converts raw records into papers with display-ready fields.
type Normalizer struct {
	resolver service.SittingDateResolver
}

// NewNormalizer creates a normalizer that resolves dates through resolver.
// A nil resolver leaves dates unresolved: they are formatted as given.
func NewNormalizer(resolver service.SittingDateResolver) *Normalizer {
	return &Normalizer{resolver: resolver}
}

// Normalize builds a Paper from rec. It never fails; fields that cannot be
// derived are left empty.
func (n *Normalizer) Normalize(ctx context.Context, rec model.RawRecord) *model.Paper {
	p := &model.Paper{
		ID:                 rec.ID,
		SideTitle:          model.Clean(rec.SideTitle),
		RawTitle:           model.Clean(rec.Title),
		SubjectHeading:     model.Clean(rec.SubjectHeading),
		IsDraft:            strings.EqualFold(model.Clean(rec.Draft), "true"),
		Year:               strings.ReplaceAll(model.Clean(rec.Year), "–", "-"),
		InputDateLaid:      model.Clean(rec.DateLaidCommons),
		InputDateWithdrawn: model.Clean(rec.DateWithdrawn),
	}

	p.Title = p.RawTitle
	if p.SubjectHeading != "" {
		p.Title = p.SubjectHeading
	}

	p.DateLaid = n.resolveDate(ctx, p.ID, "date_laid", p.InputDateLaid)
	p.DateWithdrawn = n.resolveDate(ctx, p.ID, "date_withdrawn", p.InputDateWithdrawn)

	return p
}

// resolveDate parses the date part of an ISO date-time, moves it to the
// sitting date and formats it for display.
func (n *Normalizer) resolveDate(ctx context.Context, id, field, value string) string {
	if len(value) < len(inputDateLayout) {
		return ""
	}

	day, err := time.Parse(inputDateLayout, value[:len(inputDateLayout)])
	if err != nil {
		slog.Debug("Unparseable paper date", "paper_id", id, "field", field, "value", value, "error", err)
		return ""
	}

	if n.resolver == nil {
		return day.Format(model.DisplayDateLayout)
	}

	sitting, err := n.resolver.SittingDate(ctx, day)
	if err != nil {
		slog.Debug("Sitting date unavailable", "paper_id", id, "field", field, "date", day.Format(inputDateLayout), "error", err)
		return ""
	}

	return sitting.Format(model.DisplayDateLayout)
}
