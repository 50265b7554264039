package index

import "regexp"

// Rule assigns a group to papers whose title matches Pattern.
// The matched text is removed from the title; BaseKey starts the group key.
type Rule struct {
	Pattern *regexp.Regexp
	Name    string
	BaseKey string
}

// DefaultRules returns the grouping rules in evaluation order.
// The order matters: the first matching rule wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    "regulations",
			Pattern: regexp.MustCompile(`(?i)Regulations ? ?\d?\d?\d?\d?$`),
			BaseKey: "Regulations: ",
		},
		{
			Name:    "law-commission",
			Pattern: regexp.MustCompile(`(?i)^Report of the Law Commission (on )?`),
			BaseKey: "Report of the Law Commission: ",
		},
		{
			Name:    "order",
			Pattern: regexp.MustCompile(`(?i)Order ? ?\d?\d?\d?\d?$`),
			BaseKey: "Order: ",
		},
		{
			Name:    "order-of-council",
			Pattern: regexp.MustCompile(`(?i)Order of Council ? ?\d?\d?\d?\d?$`),
			BaseKey: "Order of Council: ",
		},
		{
			Name:    "report-and-accounts",
			Pattern: regexp.MustCompile(`(?i)^Report and Accounts of `),
			BaseKey: "Reports and Accounts, ",
		},
		{
			// Requires a four digit year.
			Name:    "rules",
			Pattern: regexp.MustCompile(`(?i)Rules ? ?\d\d\d\d$`),
			BaseKey: "Rules: ",
		},
		{
			Name:    "accounts",
			Pattern: regexp.MustCompile(`(?i)^Accounts of `),
			BaseKey: "Accounts, ",
		},
		{
			Name:    "account",
			Pattern: regexp.MustCompile(`(?i)^Account of (the)?`),
			BaseKey: "Account, ",
		},
		{
			Name:    "borders-inspector",
			Pattern: regexp.MustCompile(`(?i)^Report of the Independent Chief Inspector of Borders and Immigration: `),
			BaseKey: "Report of the Independent Chief Inspector of Borders and Immigration: ",
		},
		{
			Name:    "comptroller",
			Pattern: regexp.MustCompile(`(?i)^Report by the Comptroller and Auditor General on `),
			BaseKey: "Report by the Comptroller and Auditor General: ",
		},
	}
}
