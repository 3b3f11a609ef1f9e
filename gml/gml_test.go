// Package gml_test covers round-tripping, interop with weight-only files,
// and syntax-error reporting.
package gml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosephLeeeeeee/FlowLM/builder"
	"github.com/JosephLeeeeeee/FlowLM/gml"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	g, err := builder.BuildConnectedGraph(
		[]builder.Option{builder.WithSeed(42)}, builder.Waxman(20, 0.8, 0.3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gml.Encode(&buf, g))

	decoded, err := gml.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, g.VertexCount(), decoded.VertexCount())
	assert.Equal(t, g.EdgeCount(), decoded.EdgeCount())
	for _, id := range g.Vertices() {
		want, err := g.Vertex(id)
		require.NoError(t, err)
		got, err := decoded.Vertex(id)
		require.NoError(t, err)
		assert.InDelta(t, want.X, got.X, 1e-12)
		assert.InDelta(t, want.Y, got.Y, 1e-12)
	}
	for _, e := range g.Edges() {
		got, err := decoded.EdgeBetween(e.From, e.To)
		require.NoErrorf(t, err, "edge %s—%s lost in round-trip", e.From, e.To)
		assert.Equal(t, e.Weight, got.Weight)
		assert.Equal(t, e.Capacity, got.Capacity)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, gml.Encode(&a, g))
	require.NoError(t, gml.Encode(&b, g))
	assert.Equal(t, a.String(), b.String())
}

func TestDecode_WeightOnlyFile(t *testing.T) {
	// The shape networkx write_gml produces: labels, no capacity key.
	input := `graph [
  node [
    id 0
    label "0"
  ]
  node [
    id 1
    label "1"
  ]
  edge [
    source 0
    target 1
    weight 4
  ]
]
`
	g, err := gml.Decode(strings.NewReader(input))
	require.NoError(t, err)

	e, err := g.EdgeBetween("0", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), e.Weight)
	assert.Equal(t, gml.DefaultCapacity, e.Capacity)
}

func TestDecode_SkipsUnknownKeys(t *testing.T) {
	input := `Creator "some tool"
graph [
  directed 0
  node [
    id 0
    label "a"
    graphics [ w 10 h 10 ]
  ]
  node [
    id 1
    label "b"
  ]
  edge [
    source 0
    target 1
    weight 1
    style "dashed"
  ]
]
`
	g, err := gml.Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasEdge("a", "b"))
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"no graph block", `Creator "x"`, gml.ErrNoGraph},
		{"unterminated graph", "graph [ node [ id 0 ]", gml.ErrSyntax},
		{"node without id", "graph [ node [ label \"a\" ] ]", gml.ErrSyntax},
		{"edge to unknown node", "graph [ node [ id 0 ] edge [ source 0 target 7 ] ]", gml.ErrSyntax},
		{"unterminated string", "graph [ node [ id 0 label \"a ] ]", gml.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gml.Decode(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
