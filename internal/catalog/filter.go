package catalog

import "strings"

// Matches reports whether any field contains query, ignoring case.
// An empty query matches everything.
func Matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterObjects keeps objects whose name or domain contains query
func FilterObjects(objects []DataObject, query string) []DataObject {
	out := make([]DataObject, 0, len(objects))
	for _, o := range objects {
		if Matches(query, o.Name, o.Domain) {
			out = append(out, o)
		}
	}
	return out
}

// FilterDomains keeps domains whose name or steward name contains query
func FilterDomains(domains []Domain, query string) []Domain {
	out := make([]Domain, 0, len(domains))
	for _, d := range domains {
		if Matches(query, d.Name, d.Steward.Name) {
			out = append(out, d)
		}
	}
	return out
}
