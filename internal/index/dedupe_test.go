package index

import (
	"testing"

	"github.com/Veraticus/papers-index/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name    string
		records []model.RawRecord
		want    []model.RawRecord
	}{
		{
			name:    "empty input",
			records: nil,
			want:    []model.RawRecord{},
		},
		{
			name: "later record wins",
			records: []model.RawRecord{
				{ID: "1", Title: "first version"},
				{ID: "1", Title: "second version"},
			},
			want: []model.RawRecord{
				{ID: "1", Title: "second version"},
			},
		},
		{
			name: "distinct ids kept newest first",
			records: []model.RawRecord{
				{ID: "1", Title: "a"},
				{ID: "2", Title: "b"},
				{ID: "3", Title: "c"},
			},
			want: []model.RawRecord{
				{ID: "3", Title: "c"},
				{ID: "2", Title: "b"},
				{ID: "1", Title: "a"},
			},
		},
		{
			name: "interleaved revisions",
			records: []model.RawRecord{
				{ID: "1", Title: "a1"},
				{ID: "2", Title: "b1"},
				{ID: "1", Title: "a2"},
				{ID: "2", Title: "b2"},
				{ID: "1", Title: "a3"},
			},
			want: []model.RawRecord{
				{ID: "1", Title: "a3"},
				{ID: "2", Title: "b2"},
			},
		},
		{
			name: "empty ids collapse to the newest",
			records: []model.RawRecord{
				{ID: "", Title: "no id one"},
				{ID: "7", Title: "has id"},
				{ID: "", Title: "no id two"},
			},
			want: []model.RawRecord{
				{ID: "", Title: "no id two"},
				{ID: "7", Title: "has id"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Deduplicate(tt.records))
		})
	}
}

func TestDeduplicate_IndependentCalls(t *testing.T) {
	records := []model.RawRecord{{ID: "1", Title: "a"}}

	assert.Len(t, Deduplicate(records), 1)
	assert.Len(t, Deduplicate(records), 1, "a second run must not remember ids from the first")
}
