// Package classification defines the NSAA volleyball classifications and
// the source page published for each one.
//
// The NSAA posts one static results page per classification on its S3
// host. The set of classifications and their URLs are fixed for a season
// and known at startup; iteration order is significant because team-key
// collisions across classifications resolve in favor of the later
// classification.
package classification

import (
	"fmt"
	"strings"
)

// BaseURL is the NSAA static host prefix shared by all classification pages.
const BaseURL = "https://nsaa-static.s3.amazonaws.com/calculate/"

// Classification is one division bracket of the competition.
type Classification struct {
	// Code is the short bracket name as it appears on NSAA pages ("A", "C1", ...).
	Code string
	// Page is the file name of the results page on the static host.
	Page string
}

// The six brackets, in the order runs process them. Later entries win
// team-key collisions.
var all = []Classification{
	{Code: "A", Page: "showclassvbA.html"},
	{Code: "B", Page: "showclassvbB.html"},
	{Code: "C1", Page: "showclassvbC1.html"},
	{Code: "C2", Page: "showclassvbC2.html"},
	{Code: "D1", Page: "showclassvbD1.html"},
	{Code: "D2", Page: "showclassvbD2.html"},
}

// All returns every classification in processing order. The returned
// slice is a copy; callers may reorder or subset it freely.
func All() []Classification {
	out := make([]Classification, len(all))
	copy(out, all)
	return out
}

// URL returns the full source URL for the classification's results page.
func (c Classification) URL() string {
	return BaseURL + c.Page
}

// String returns the classification code.
func (c Classification) String() string {
	return c.Code
}

// Parse looks up a classification by code, case-insensitively.
func Parse(code string) (Classification, error) {
	want := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range all {
		if c.Code == want {
			return c, nil
		}
	}
	return Classification{}, fmt.Errorf("unknown classification %q (valid: %s)", code, strings.Join(Codes(), ", "))
}

// Codes returns the classification codes in processing order.
func Codes() []string {
	codes := make([]string, len(all))
	for i, c := range all {
		codes[i] = c.Code
	}
	return codes
}

// Subset resolves a comma-separated list of codes into classifications in
// canonical processing order, regardless of the order given. An empty
// list means all classifications.
func Subset(list string) ([]Classification, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return All(), nil
	}

	wanted := make(map[string]bool)
	for _, code := range strings.Split(list, ",") {
		c, err := Parse(code)
		if err != nil {
			return nil, err
		}
		wanted[c.Code] = true
	}

	var out []Classification
	for _, c := range all {
		if wanted[c.Code] {
			out = append(out, c)
		}
	}
	return out, nil
}
