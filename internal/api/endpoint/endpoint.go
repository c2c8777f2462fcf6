// Package endpoint is the catalog of every API route the client knows about,
// grouped by resource family. Each constructor yields the path and verb for
// one operation; combinations that do not exist in the API have no
// constructor, so they cannot be built.
package endpoint

import "strings"

// Endpoint identifies one API route: an HTTP verb plus a path relative to
// the versioned API root.
type Endpoint struct {
	Method string
	Path   string
}

// expand substitutes a path parameter into its template slot verbatim.
// No escaping is performed; URL encoding is the request builder's problem.
func expand(template, name, value string) string {
	return strings.ReplaceAll(template, "{"+name+"}", value)
}
