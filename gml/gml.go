package gml

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// DefaultCapacity is assumed for edges whose GML record carries no
// "capacity" key; weight-only dataset files get the harness's standard
// per-link budget.
const DefaultCapacity = int64(10)

// Sentinel errors for GML decoding.
var (
	// ErrSyntax indicates malformed GML input.
	ErrSyntax = errors.New("gml: syntax error")

	// ErrNoGraph indicates input with no "graph [ ... ]" block.
	ErrNoGraph = errors.New("gml: no graph block found")
)

// Encode writes g in GML form. Vertices and edges are emitted in the
// graph's deterministic order; output is byte-stable for equal graphs.
func Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("gml: nil graph")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph [")

	// Vertex IDs map to integer GML ids by position in sorted order.
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
		v, err := g.Vertex(id)
		if err != nil {
			return fmt.Errorf("gml: %w", err)
		}
		fmt.Fprintln(bw, "  node [")
		fmt.Fprintf(bw, "    id %d\n", i)
		fmt.Fprintf(bw, "    label %q\n", id)
		fmt.Fprintf(bw, "    x %s\n", strconv.FormatFloat(v.X, 'g', -1, 64))
		fmt.Fprintf(bw, "    y %s\n", strconv.FormatFloat(v.Y, 'g', -1, 64))
		fmt.Fprintln(bw, "  ]")
	}
	for _, e := range g.Edges() {
		fmt.Fprintln(bw, "  edge [")
		fmt.Fprintf(bw, "    source %d\n", index[e.From])
		fmt.Fprintf(bw, "    target %d\n", index[e.To])
		fmt.Fprintf(bw, "    weight %d\n", e.Weight)
		fmt.Fprintf(bw, "    capacity %d\n", e.Capacity)
		fmt.Fprintln(bw, "  ]")
	}
	fmt.Fprintln(bw, "]")

	return bw.Flush()
}

// Decode parses GML input into a core.Graph.
//
// Nodes must appear before the edges that reference them (the order every
// known writer uses). Unrecognized keys are skipped, including nested
// blocks.
func Decode(r io.Reader) (*core.Graph, error) {
	toks, err := tokenize(r)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	// Scan for the top-level graph block, skipping leading keys such as
	// "Creator" comments.
	for {
		key, ok := p.next()
		if !ok {
			return nil, ErrNoGraph
		}
		if key == "graph" {
			break
		}
		if err := p.skipValue(); err != nil {
			return nil, err
		}
	}
	if err := p.expect("["); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	labels := make(map[int64]string) // GML integer id → vertex ID

	for {
		key, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("unterminated graph block: %w", ErrSyntax)
		}
		if key == "]" {
			break
		}
		switch key {
		case "node":
			if err := p.decodeNode(g, labels); err != nil {
				return nil, err
			}
		case "edge":
			if err := p.decodeEdge(g, labels); err != nil {
				return nil, err
			}
		default:
			if err := p.skipValue(); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// parser walks a token stream with one-token lookahead.
type parser struct {
	toks []string
	pos  int
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	t := p.toks[p.pos]
	p.pos++

	return t, true
}

func (p *parser) expect(tok string) error {
	got, ok := p.next()
	if !ok || got != tok {
		return fmt.Errorf("expected %q, got %q: %w", tok, got, ErrSyntax)
	}

	return nil
}

// skipValue consumes one value: a scalar token or a balanced [...] block.
func (p *parser) skipValue() error {
	tok, ok := p.next()
	if !ok {
		return fmt.Errorf("unexpected end of input: %w", ErrSyntax)
	}
	if tok != "[" {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, ok = p.next()
		if !ok {
			return fmt.Errorf("unbalanced brackets: %w", ErrSyntax)
		}
		switch tok {
		case "[":
			depth++
		case "]":
			depth--
		}
	}

	return nil
}

func (p *parser) decodeNode(g *core.Graph, labels map[int64]string) error {
	if err := p.expect("["); err != nil {
		return err
	}

	var (
		id      int64 = -1
		label   string
		x, y    float64
		haveID  bool
		haveLbl bool
	)
	for {
		key, ok := p.next()
		if !ok {
			return fmt.Errorf("unterminated node block: %w", ErrSyntax)
		}
		if key == "]" {
			break
		}
		switch key {
		case "id":
			v, err := p.intValue("node id")
			if err != nil {
				return err
			}
			id, haveID = v, true
		case "label":
			v, ok := p.next()
			if !ok {
				return fmt.Errorf("node label missing value: %w", ErrSyntax)
			}
			label, haveLbl = unquote(v), true
		case "x":
			v, err := p.floatValue("node x")
			if err != nil {
				return err
			}
			x = v
		case "y":
			v, err := p.floatValue("node y")
			if err != nil {
				return err
			}
			y = v
		default:
			if err := p.skipValue(); err != nil {
				return err
			}
		}
	}
	if !haveID {
		return fmt.Errorf("node without id: %w", ErrSyntax)
	}
	if !haveLbl {
		label = strconv.FormatInt(id, 10)
	}
	labels[id] = label

	if err := g.AddVertex(label, x, y); err != nil {
		return fmt.Errorf("gml: node %q: %w", label, err)
	}

	return nil
}

func (p *parser) decodeEdge(g *core.Graph, labels map[int64]string) error {
	if err := p.expect("["); err != nil {
		return err
	}

	var (
		source, target int64 = -1, -1
		weight         int64
		capacity       = DefaultCapacity
		haveSrc        bool
		haveDst        bool
	)
	for {
		key, ok := p.next()
		if !ok {
			return fmt.Errorf("unterminated edge block: %w", ErrSyntax)
		}
		if key == "]" {
			break
		}
		switch key {
		case "source":
			v, err := p.intValue("edge source")
			if err != nil {
				return err
			}
			source, haveSrc = v, true
		case "target":
			v, err := p.intValue("edge target")
			if err != nil {
				return err
			}
			target, haveDst = v, true
		case "weight":
			v, err := p.intValue("edge weight")
			if err != nil {
				return err
			}
			weight = v
		case "capacity":
			v, err := p.intValue("edge capacity")
			if err != nil {
				return err
			}
			capacity = v
		default:
			if err := p.skipValue(); err != nil {
				return err
			}
		}
	}
	if !haveSrc || !haveDst {
		return fmt.Errorf("edge without source/target: %w", ErrSyntax)
	}
	from, ok := labels[source]
	if !ok {
		return fmt.Errorf("edge source id %d references no node: %w", source, ErrSyntax)
	}
	to, ok := labels[target]
	if !ok {
		return fmt.Errorf("edge target id %d references no node: %w", target, ErrSyntax)
	}

	if _, err := g.AddEdge(from, to, weight, capacity); err != nil {
		return fmt.Errorf("gml: edge %s—%s: %w", from, to, err)
	}

	return nil
}

func (p *parser) intValue(what string) (int64, error) {
	tok, ok := p.next()
	if !ok {
		return 0, fmt.Errorf("%s missing value: %w", what, ErrSyntax)
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		// Some writers emit integral attributes as floats.
		f, ferr := strconv.ParseFloat(tok, 64)
		if ferr != nil {
			return 0, fmt.Errorf("%s: %q is not a number: %w", what, tok, ErrSyntax)
		}
		v = int64(f)
	}

	return v, nil
}

func (p *parser) floatValue(what string) (float64, error) {
	tok, ok := p.next()
	if !ok {
		return 0, fmt.Errorf("%s missing value: %w", what, ErrSyntax)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number: %w", what, tok, ErrSyntax)
	}

	return v, nil
}

// tokenize splits GML input into tokens: bare words, numbers, brackets,
// and quoted strings (quotes kept for unquote to strip).
func tokenize(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gml: reading input: %w", err)
	}

	var toks []string
	s := string(data)
	for i := 0; i < len(s); {
		c := rune(s[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '[' || c == ']':
			toks = append(toks, string(c))
			i++
		case c == '"':
			j := i + 1
			for j < len(s) && s[j] != '"' {
				j++
			}
			if j >= len(s) {
				return nil, fmt.Errorf("unterminated string: %w", ErrSyntax)
			}
			toks = append(toks, s[i:j+1])
			i = j + 1
		case c == '#':
			// Comment to end of line.
			for i < len(s) && s[i] != '\n' {
				i++
			}
		default:
			j := i
			for j < len(s) && !unicode.IsSpace(rune(s[j])) && s[j] != '[' && s[j] != ']' {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		}
	}

	return toks, nil
}

// unquote strips surrounding double quotes, if present.
func unquote(tok string) string {
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return tok[1 : len(tok)-1]
	}

	return tok
}
