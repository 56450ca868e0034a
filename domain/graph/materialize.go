package graph

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	apperrors "granefapi/pkg/errors"
)

// typeAttribute carries the declared node types in raw results
const typeAttribute = "dgraph.type"

// valueKind tags the shape of a raw attribute value. Each key is
// classified exactly once per visit and dispatched on the tag.
type valueKind int

const (
	kindScalar valueKind = iota
	kindScalarList
	kindNodeList
	kindEmptyList
)

// classify inspects a decoded JSON value's shape
func classify(v interface{}) valueKind {
	list, ok := v.([]interface{})
	if !ok {
		return kindScalar
	}
	if len(list) == 0 {
		return kindEmptyList
	}
	if _, ok := list[0].(map[string]interface{}); ok {
		return kindNodeList
	}
	return kindScalarList
}

// MaterializeDocument converts a raw store response into a graph. Every
// top-level result list contributes nodes and edges; lists are processed
// in sorted key order so materialization is deterministic, and their
// direct items become fixed nodes.
func MaterializeDocument(raw []byte) (*Graph, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	g := New()
	for _, k := range keys {
		if err := materializeRoot(g, k, doc[k]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Materialize converts the raw response's value under the named
// top-level result into a graph.
func Materialize(raw []byte, root string) (*Graph, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	value, ok := doc[root]
	if !ok {
		return nil, apperrors.NewMaterializationError(
			fmt.Sprintf("top-level result '%s' is missing from the raw response", root))
	}

	g := New()
	if err := materializeRoot(g, root, value); err != nil {
		return nil, err
	}
	return g, nil
}

func decodeDocument(raw []byte) (map[string]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.NewMaterializationError("raw response is not a JSON object").WithCause(err)
	}
	return doc, nil
}

// materializeRoot walks one top-level result list, marking its direct
// items as fixed. Roots that are not node lists (aggregation blocks and
// the like) contribute nothing.
func materializeRoot(g *Graph, name string, raw json.RawMessage) error {
	var nodes []map[string]interface{}
	if err := json.Unmarshal(raw, &nodes); err != nil {
		return apperrors.NewMaterializationError(
			fmt.Sprintf("top-level result '%s' is not a list of result nodes", name)).WithCause(err)
	}
	for _, node := range nodes {
		if _, err := g.walk(node, true); err != nil {
			return err
		}
	}
	return nil
}

// walk recursively upserts a raw result node and its relations. The
// fixed flag is sticky: once a node has been seen as a top-level result
// it stays fixed no matter how often nested traversal reaches it again.
func (g *Graph) walk(raw map[string]interface{}, fixed bool) (*Node, error) {
	uid, ok := raw["uid"].(string)
	if !ok || uid == "" {
		return nil, apperrors.NewMaterializationError("result node is missing its uid")
	}

	n := g.upsert(uid)
	if fixed {
		n.Fixed = true
	}

	// Sorted key order keeps edge discovery deterministic
	keys := make([]string, 0, len(raw))
	for k := range raw {
		if k != "uid" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		switch classify(value) {
		case kindScalar:
			if key == typeAttribute {
				n.mergeTypes([]interface{}{value})
				continue
			}
			n.setScalar(key, value)

		case kindScalarList:
			if key == typeAttribute {
				n.mergeTypes(value.([]interface{}))
				continue
			}
			n.mergeList(key, value.([]interface{}))

		case kindNodeList:
			relation := strings.TrimPrefix(key, ReverseMarker)
			direction := DirectionForward
			if relation != key {
				direction = DirectionReverse
			}
			for _, item := range value.([]interface{}) {
				target, ok := item.(map[string]interface{})
				if !ok {
					return nil, apperrors.NewMaterializationError(
						fmt.Sprintf("relation '%s' mixes nodes and scalar values", relation))
				}
				child, err := g.walk(target, false)
				if err != nil {
					return nil, err
				}
				if direction == DirectionReverse {
					g.addEdge(child.UID, n.UID, relation, direction)
				} else {
					g.addEdge(n.UID, child.UID, relation, direction)
				}
			}

		case kindEmptyList:
			// A relation with no targets produces neither edge nor attribute
		}
	}

	return n, nil
}

// setScalar records a scalar attribute, keeping the first observation
func (n *Node) setScalar(key string, value interface{}) {
	existing, ok := n.Attributes[key]
	if !ok {
		n.Attributes[key] = value
		return
	}
	if list, isList := existing.([]interface{}); isList {
		n.Attributes[key] = appendMissing(list, value)
	}
}

// mergeList records a multi-valued attribute as a stable union: elements
// not yet observed are appended in order
func (n *Node) mergeList(key string, values []interface{}) {
	existing, ok := n.Attributes[key]
	if !ok {
		merged := make([]interface{}, 0, len(values))
		for _, v := range values {
			merged = appendMissing(merged, v)
		}
		n.Attributes[key] = merged
		return
	}
	list, isList := existing.([]interface{})
	if !isList {
		list = []interface{}{existing}
	}
	for _, v := range values {
		list = appendMissing(list, v)
	}
	n.Attributes[key] = list
}

// mergeTypes folds declared type tags into the node record
func (n *Node) mergeTypes(values []interface{}) {
	for _, v := range values {
		tag, ok := v.(string)
		if !ok {
			continue
		}
		seen := false
		for _, t := range n.Types {
			if t == tag {
				seen = true
				break
			}
		}
		if !seen {
			n.Types = append(n.Types, tag)
		}
	}
}

func appendMissing(list []interface{}, value interface{}) []interface{} {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
