package graph

// typeColors maps declared node types to their display colors
var typeColors = map[string]ColorPair{
	// Green
	"Host": {Background: "#d5e8d4", Border: "#82b366"},
	// Orange
	"Connection": {Background: "#ffe6cc", Border: "#d79b00"},
	// Gray
	"File":       {Background: "#f5f5f5", Border: "#666666"},
	"User_Agent": {Background: "#f5f5f5", Border: "#666666"},
	"Hostname":   {Background: "#f5f5f5", Border: "#666666"},
	"X509":       {Background: "#f5f5f5", Border: "#666666"},
}

// alertColor is the red fallback pair for unknown types
var alertColor = ColorPair{Background: "#f8cecc", Border: "#b85450"}

// typeLabelAttributes maps a declared type to the attribute preferred as
// its display label
var typeLabelAttributes = map[string]string{
	"Host":       "host.ip",
	"Connection": "connection.proto",
	"File":       "files.md5",
	"Hostname":   "hostname.name",
	"User_Agent": "user_agent.name",
	"X509":       "x509.subject",
}

// labelAttributeOrder is consulted when a node's declared type carries no
// label preference; the first present attribute wins.
var labelAttributeOrder = []string{
	"host.ip",
	"connection.proto",
	"hostname.name",
	"user_agent.name",
	"files.md5",
	"x509.subject",
}

// ColorsFor returns the display colors for a declared type. Total over
// all inputs: unknown types get the alert pair.
func ColorsFor(nodeType string) ColorPair {
	if pair, ok := typeColors[nodeType]; ok {
		return pair
	}
	return alertColor
}

// Annotate assigns every node its display color and label. The graph is
// annotated in place and returned for chaining.
func Annotate(g *Graph) *Graph {
	for _, n := range g.Nodes() {
		n.Color = ColorsFor(n.Type())
		n.Label = labelFor(n)
	}
	return g
}

// labelFor derives a node's display label. An explicit label alias in
// the query wins; then the type's preferred attribute; then any
// well-known label attribute present on the node; then the type tag.
func labelFor(n *Node) string {
	if label := scalarString(n.Attributes["label"]); label != "" {
		return label
	}
	if preferred, ok := typeLabelAttributes[n.Type()]; ok {
		if label := scalarString(n.Attributes[preferred]); label != "" {
			return label
		}
	}
	for _, attr := range labelAttributeOrder {
		if label := scalarString(n.Attributes[attr]); label != "" {
			return label
		}
	}
	return n.Type()
}

// scalarString renders a scalar or first-of-list attribute value as a
// string label, or "" when it cannot serve as one
func scalarString(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case []interface{}:
		if len(value) > 0 {
			if s, ok := value[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
