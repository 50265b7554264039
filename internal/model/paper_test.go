package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "Acme Order 2016", Clean("  Acme   Order\n 2016 "))
	assert.Equal(t, "", Clean("   "))
}

func TestEnDashRanges(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2015-16", "2015–16"},
		{"Accounts, 2015-16: ", "Accounts, 2015–16: "},
		{"1-2-3", "1–2–3"},
		{"Non-Contentious Probate", "Non-Contentious Probate"},
		{"2015 - 16", "2015 - 16"},
		{"-1", "-1"},
		{"1-", "1-"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EnDashRanges(tt.in))
		})
	}
}

func TestPaper_IndexEntry(t *testing.T) {
	tests := []struct {
		name  string
		paper Paper
		want  string
	}{
		{
			name:  "title and date",
			paper: Paper{Title: "Justices of the Peace", DateLaid: "19 May 2016"},
			want:  "Justices of the Peace, 19 May 2016",
		},
		{
			name:  "withdrawn",
			paper: Paper{Title: "Memo", DateLaid: "3 Feb 2017", DateWithdrawn: "27 Feb 2017"},
			want:  "Memo, 3 Feb 2017 [withdrawn, 27 Feb 2017]",
		},
		{
			name:  "no dates",
			paper: Paper{Title: "Acme"},
			want:  "Acme",
		},
		{
			name:  "year range gets en-dash",
			paper: Paper{Title: "Fund for 2015-16", DateLaid: "7 Jul 2016"},
			want:  "Fund for 2015–16, 7 Jul 2016",
		},
		{
			name:  "empty title",
			paper: Paper{DateLaid: "7 Jul 2016"},
			want:  "7 Jul 2016",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.paper.IndexEntry())
		})
	}
}

func TestPaper_SortKey(t *testing.T) {
	tests := []struct {
		name  string
		paper Paper
		want  string
	}{
		{
			name:  "leading the dropped",
			paper: Paper{Title: "The Apple Trust", InputDateLaid: "2016-05-19T00:00:00"},
			want:  "apple trust, 2016-05-19T00:00:00",
		},
		{
			name:  "laid note dropped",
			paper: Paper{Title: "Memo (laid 3 February)", InputDateLaid: "2017-02-27T00:00:00"},
			want:  "memo, 2017-02-27T00:00:00",
		},
		{
			name:  "laid note with year dropped",
			paper: Paper{Title: "Memo (laid 12 January 2017) extra", InputDateLaid: "2017-02-27"},
			want:  "memo extra, 2017-02-27",
		},
		{
			name:  "withdrawal annotation included",
			paper: Paper{Title: "Memo", InputDateLaid: "2017-02-03", DateWithdrawn: "27 Feb 2017"},
			want:  "memo, 2017-02-03 [withdrawn, 27 Feb 2017]",
		},
		{
			name:  "no dates",
			paper: Paper{Title: "Theatres Trust"},
			want:  "theatres trust",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.paper.SortKey())
		})
	}
}

func TestPapersStructure_Add(t *testing.T) {
	ps := PapersStructure{}
	ps.Add(&Paper{SideTitle: "A", GroupKey: OtherPapers})
	ps.Add(&Paper{SideTitle: "A", GroupKey: OtherPapers})
	ps.Add(&Paper{SideTitle: "B", GroupKey: "Order: "})

	assert.Len(t, ps, 2)
	assert.Len(t, ps["A"][OtherPapers], 2)
	assert.Equal(t, 3, ps.Len())
}
