package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"granefapi/application/ports"
	"granefapi/application/queries"
	"granefapi/domain/graph"
	"granefapi/infrastructure/layout"
	apperrors "granefapi/pkg/errors"
)

// stubStore returns a canned response and records what it was asked
type stubStore struct {
	raw       []byte
	err       error
	lastQuery string
	lastVars  map[string]string
	calls     int
}

func (s *stubStore) Query(ctx context.Context, query string, vars map[string]string) ([]byte, error) {
	s.calls++
	s.lastQuery = query
	s.lastVars = vars
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

func newTestService(store ports.Store, maxNodes int) *QueryService {
	providers := map[string]ports.LayoutProvider{
		"force_directed": layout.NewGrid(5),
		"grid":           layout.NewGrid(5),
	}
	return NewQueryService(store, providers, maxNodes, zap.NewNop())
}

func TestHandleJSONPassthrough(t *testing.T) {
	store := &stubStore{raw: []byte(`{"getHost":[{"host.ip":"192.168.0.2"},{"host.ip":"192.168.1.16"}]}`)}
	svc := newTestService(store, 100)

	result, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{Body: `{ getHost(func: uid(0x1)) { host.ip } }`},
		Mode:  "json",
	})
	require.NoError(t, err)

	doc, ok := result.(map[string]interface{})
	require.True(t, ok)
	hosts, ok := doc["getHost"].([]interface{})
	require.True(t, ok)
	assert.Len(t, hosts, 2)

	// json mode sends the query untouched
	assert.NotContains(t, store.lastQuery, "dgraph.type host.ip")
}

func TestHandleDefaultsToJSONMode(t *testing.T) {
	store := &stubStore{raw: []byte(`{"q":[]}`)}
	svc := newTestService(store, 100)

	result, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{Body: `{ q(func: uid(0x1)) { host.ip } }`},
	})
	require.NoError(t, err)

	doc := result.(map[string]interface{})
	assert.Equal(t, []interface{}{}, doc["q"])
}

func TestHandleGraphModeScenario(t *testing.T) {
	store := &stubStore{raw: []byte(`{"q":[{"uid":"0x1","host.ip":"10.0.0.1","host.originated":[{"uid":"0x2","connection.proto":"tcp"}]}]}`)}
	svc := newTestService(store, 100)

	result, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{Body: `{ q(func: uid(0x1)) { host.ip host.originated { connection.proto } } }`},
		Mode:  "graph",
	})
	require.NoError(t, err)

	doc, ok := result.(*graph.ViewDocument)
	require.True(t, ok)
	require.Len(t, doc.Nodes, 2)
	require.Len(t, doc.Edges, 1)

	byID := map[string]graph.ViewNode{}
	for _, n := range doc.Nodes {
		byID[n.ID] = n
	}
	assert.True(t, byID["0x1"].Fixed)
	assert.Equal(t, "10.0.0.1", byID["0x1"].Label)
	assert.False(t, byID["0x2"].Fixed)
	assert.Equal(t, "tcp", byID["0x2"].Label)
	require.NotNil(t, byID["0x1"].X)
	require.NotNil(t, byID["0x2"].X)

	edge := doc.Edges[0]
	assert.Equal(t, "0x1", edge.From)
	assert.Equal(t, "0x2", edge.To)
	assert.Equal(t, "host.originated", edge.Label)

	// graph mode injects the identity attributes before execution
	assert.Contains(t, store.lastQuery, "uid dgraph.type")
}

func TestHandleGraphModeEmptyResult(t *testing.T) {
	store := &stubStore{raw: []byte(`{"q":[]}`)}
	svc := newTestService(store, 100)

	result, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{Body: `{ q(func: uid(0x1)) { host.ip } }`},
		Mode:  "graph",
	})
	require.NoError(t, err)

	doc := result.(*graph.ViewDocument)
	assert.Empty(t, doc.Nodes)
	assert.Empty(t, doc.Edges)
}

func TestHandleInvalidMode(t *testing.T) {
	store := &stubStore{raw: []byte(`{}`)}
	svc := newTestService(store, 100)

	_, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{Body: `{ q(func: uid(0x1)) { host.ip } }`},
		Mode:  "xml",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	// Rejected before any store call
	assert.Equal(t, 0, store.calls)
}

func TestHandleInvalidLayout(t *testing.T) {
	store := &stubStore{raw: []byte(`{}`)}
	svc := newTestService(store, 100)

	_, err := svc.Handle(context.Background(), Request{
		Query:  queries.Request{Body: `{ q(func: uid(0x1)) { host.ip } }`},
		Mode:   "graph",
		Layout: "mandala",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, store.calls)
}

func TestHandleLayoutSkippedAboveBound(t *testing.T) {
	store := &stubStore{raw: []byte(`{"q":[{"uid":"0x1"},{"uid":"0x2"},{"uid":"0x3"}]}`)}
	svc := newTestService(store, 2)

	result, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{Body: `{ q(func: has(host.ip)) { host.ip } }`},
		Mode:  "graph",
	})
	require.NoError(t, err)

	doc := result.(*graph.ViewDocument)
	require.Len(t, doc.Nodes, 3)
	for _, n := range doc.Nodes {
		assert.Nil(t, n.X)
		assert.Nil(t, n.Y)
		assert.False(t, n.Fixed)
	}
}

func TestHandleStoreErrorPropagates(t *testing.T) {
	store := &stubStore{err: apperrors.NewStoreUnavailableError()}
	svc := newTestService(store, 100)

	_, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{Body: `{ q(func: uid(0x1)) { host.ip } }`},
		Mode:  "json",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsStoreUnavailable(err))
}

func TestHandleMaterializationErrorFatal(t *testing.T) {
	store := &stubStore{raw: []byte(`{"q":[{"host.ip":"10.0.0.1"}]}`)}
	svc := newTestService(store, 100)

	_, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{Body: `{ q(func: has(host.ip)) { host.ip } }`},
		Mode:  "graph",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsMaterialization(err))
}

func TestHandleQueryHeaderPreserved(t *testing.T) {
	store := &stubStore{raw: []byte(`{"q":[]}`)}
	svc := newTestService(store, 100)

	_, err := svc.Handle(context.Background(), Request{
		Query: queries.Request{
			Header: "query getHost($uid: string)",
			Body:   `{ q(func: uid($uid)) { host.ip } }`,
			Vars:   map[string]string{"$uid": "0x1"},
		},
		Mode: "graph",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(store.lastQuery, "query getHost($uid: string)"))
	assert.Equal(t, map[string]string{"$uid": "0x1"}, store.lastVars)
}
