// Package queries holds the catalog of parameterized graph-store query
// templates. Each params struct validates its inputs before the query
// text is assembled; values reach the store through query variables
// wherever the query language allows it.
package queries

// Request is a fully prepared store query
type Request struct {
	Header string
	Body   string
	Vars   map[string]string
}

// Text returns the complete query text sent to the store
func (r Request) Text() string {
	return r.Header + r.Body
}
