package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorsForKnownTypes(t *testing.T) {
	tests := []struct {
		nodeType   string
		background string
	}{
		{"Host", "#d5e8d4"},
		{"Connection", "#ffe6cc"},
		{"File", "#f5f5f5"},
		{"User_Agent", "#f5f5f5"},
		{"Hostname", "#f5f5f5"},
		{"X509", "#f5f5f5"},
	}

	for _, tt := range tests {
		t.Run(tt.nodeType, func(t *testing.T) {
			assert.Equal(t, tt.background, ColorsFor(tt.nodeType).Background)
		})
	}
}

func TestColorsForUnknownTypeIsAlert(t *testing.T) {
	for _, nodeType := range []string{"", "Ssh", "SomethingNew"} {
		pair := ColorsFor(nodeType)
		assert.Equal(t, "#f8cecc", pair.Background)
		assert.Equal(t, "#b85450", pair.Border)
	}
}

func TestAnnotateLabels(t *testing.T) {
	raw := []byte(`{"q":[
		{"uid":"0x1","dgraph.type":["Host"],"host.ip":"10.0.0.1"},
		{"uid":"0x2","dgraph.type":["Connection"],"connection.proto":"udp"},
		{"uid":"0x3","dgraph.type":["Hostname"]},
		{"uid":"0x4","dgraph.type":["Host"],"label":"gateway","host.ip":"10.0.0.254"}
	]}`)

	g, err := MaterializeDocument(raw)
	require.NoError(t, err)
	Annotate(g)

	// Preferred attribute per type
	assert.Equal(t, "10.0.0.1", g.Node("0x1").Label)
	assert.Equal(t, "udp", g.Node("0x2").Label)
	// Preferred attribute absent: fall back to the type tag
	assert.Equal(t, "Hostname", g.Node("0x3").Label)
	// Explicit label alias wins over the preferred attribute
	assert.Equal(t, "gateway", g.Node("0x4").Label)
}

func TestAnnotateLabelWithoutDeclaredType(t *testing.T) {
	// Injection guarantees dgraph.type in practice, but labeling still
	// works from well-known attributes when the type is absent
	raw := []byte(`{"q":[{"uid":"0x1","host.ip":"10.0.0.1","host.originated":[{"uid":"0x2","connection.proto":"tcp"}]}]}`)

	g, err := MaterializeDocument(raw)
	require.NoError(t, err)
	Annotate(g)

	assert.Equal(t, "10.0.0.1", g.Node("0x1").Label)
	assert.Equal(t, "tcp", g.Node("0x2").Label)
}

func TestAnnotateColorsAssigned(t *testing.T) {
	raw := []byte(`{"q":[
		{"uid":"0x1","dgraph.type":["Host"]},
		{"uid":"0x2","dgraph.type":["Mystery"]}
	]}`)

	g, err := MaterializeDocument(raw)
	require.NoError(t, err)
	Annotate(g)

	assert.Equal(t, ColorsFor("Host"), g.Node("0x1").Color)
	assert.Equal(t, ColorsFor("Mystery"), g.Node("0x2").Color)
}

func TestEdgeIDStable(t *testing.T) {
	assert.Equal(t, EdgeID("0x1", "0x2", "owns"), EdgeID("0x1", "0x2", "owns"))
	assert.NotEqual(t, EdgeID("0x1", "0x2", "owns"), EdgeID("0x2", "0x1", "owns"))
	assert.NotEqual(t, EdgeID("0x1", "0x2", "owns"), EdgeID("0x1", "0x2", "uses"))
}
