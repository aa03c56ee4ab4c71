package blogpub

import "strings"

// ParseLabels splits a comma-delimited label string (e.g. "go, web") into a
// slice, trimming whitespace and dropping empty entries. An empty or
// all-whitespace input yields nil.
func ParseLabels(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
