// Package query rewrites raw graph-query text before it is sent to the
// store. The rewriting is purely textual: query blocks are recognized by
// their opening braces, not by a full grammar, which mirrors the query
// language loosely enough to survive aliases, directives, and variable
// blocks without parsing them.
package query

import (
	"regexp"
	"strings"
)

// DefaultAttributes is the minimal attribute set every node-producing
// block must request for a response to be materializable.
var DefaultAttributes = []string{"uid", "dgraph.type"}

var (
	lineBreaks = regexp.MustCompile("[\n\r\t]")
	spaceRuns  = regexp.MustCompile(" +")
	blockOpen  = regexp.MustCompile("\\{ *")
)

// Inject guarantees that every attribute block of the query requests the
// given attributes, prepending the missing ones. Blocks carrying a
// function-selector clause (func:) declare query roots or variables and
// produce no attribute output, so they pass through unchanged.
//
// Inject is idempotent and never fails. Queries with unbalanced braces
// are processed best-effort: the rewrite splits and rejoins text without
// validating nesting.
func Inject(query string, attributes ...string) string {
	if len(attributes) == 0 {
		attributes = DefaultAttributes
	}

	// Remove line endings and reduce runs of spaces
	reduced := spaceRuns.ReplaceAllString(lineBreaks.ReplaceAllString(query, ""), " ")

	parts := blockOpen.Split(reduced, -1)
	for i, part := range parts {
		if strings.TrimSpace(part) == "" || strings.Contains(part, "func:") {
			continue
		}
		prefix := ""
		for _, attribute := range attributes {
			if !containsAttribute(part, attribute) {
				prefix += attribute + " "
			}
		}
		parts[i] = prefix + part
	}

	return strings.Join(parts, "{")
}

// containsAttribute reports whether the block already selects the
// attribute. The match is boundary-aware so that an attribute name never
// matches inside a longer identifier (uid vs host.uid).
func containsAttribute(part, attribute string) bool {
	for start := 0; ; {
		idx := strings.Index(part[start:], attribute)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(attribute)
		if (idx == 0 || !isIdentChar(part[idx-1])) && (end == len(part) || !isIdentChar(part[end])) {
			return true
		}
		start = idx + 1
	}
}

// isIdentChar reports whether b can appear inside a predicate name.
// Dots count: predicate names are namespaced (host.ip, dgraph.type).
func isIdentChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == '.':
		return true
	}
	return false
}
