package model

// RawRecord is one paper as received from the papers-laid feed.
// Every field is the trimmed text of the matching feed element and may be empty.
type RawRecord struct {
	ID              string `json:"id" xml:"Id"`
	SideTitle       string `json:"side_title" xml:"SideTitle"`
	Title           string `json:"title" xml:"Title"`
	SubjectHeading  string `json:"subject_heading,omitempty" xml:"SubjectHeading,omitempty"`
	Draft           string `json:"draft,omitempty" xml:"Draft,omitempty"`
	Year            string `json:"year,omitempty" xml:"Year,omitempty"`
	DateLaidCommons string `json:"date_laid_commons,omitempty" xml:"DateLaidCommons,omitempty"`
	DateWithdrawn   string `json:"date_withdrawn,omitempty" xml:"DateWithdrawn,omitempty"`
}
