package index

import (
	"context"
	"log/slog"

	"github.com/Veraticus/papers-index/internal/model"
	"github.com/Veraticus/papers-index/internal/service"
)

// Builder runs the full pipeline from raw records to the output document.
type Builder struct {
	normalizer *Normalizer
	classifier *Classifier
}

// NewBuilder creates a builder. A nil classifier uses the default rules.
func NewBuilder(normalizer *Normalizer, classifier *Classifier) *Builder {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Builder{normalizer: normalizer, classifier: classifier}
}

// Build turns records, ordered oldest to newest, into the index document.
func (b *Builder) Build(ctx context.Context, records []model.RawRecord) (model.Document, service.BuildStats) {
	stats := service.BuildStats{Records: len(records)}

	kept := Deduplicate(records)
	stats.Papers = len(kept)
	slog.Info("Filtered papers", "records", len(records), "papers", len(kept))

	papers := make([]*model.Paper, len(kept))
	for i, rec := range kept {
		papers[i] = b.normalizer.Normalize(ctx, rec)
	}

	structure := b.classifier.Group(papers)
	idx := Sort(structure)
	doc := Serialize(idx)

	stats.SideTitles = len(idx.Sections)
	for _, section := range idx.Sections {
		stats.Groups += len(section.Groups)
	}
	stats.Entries = doc.Entries()

	slog.Debug("Built papers index",
		"side_titles", stats.SideTitles,
		"groups", stats.Groups,
		"entries", stats.Entries)

	return doc, stats
}
