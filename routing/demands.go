// demands.go - flow-descriptor file parsing and demand validation.
//
// File format: one demand per line, "source target bandwidth" separated by
// whitespace; blank lines and "#" comments are skipped.
package routing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// ParseDemands reads a flow-descriptor stream. Syntax errors carry the
// 1-based line number; domain violations (bandwidth out of range, equal
// endpoints) surface as ErrDemandInvalid.
func ParseDemands(r io.Reader) ([]Demand, error) {
	var demands []Demand

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want \"source target bandwidth\", got %q: %w",
				line, text, ErrDemandSyntax)
		}
		bw, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bandwidth %q: %w", line, fields[2], ErrDemandSyntax)
		}

		d := Demand{Source: fields[0], Target: fields[1], Bandwidth: bw}
		if err := validateDemand(d); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		demands = append(demands, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("routing: reading demands: %w", err)
	}
	if len(demands) == 0 {
		return nil, fmt.Errorf("no demands found: %w", ErrDemandSyntax)
	}

	return demands, nil
}

// validateDemand checks the graph-independent demand domain.
func validateDemand(d Demand) error {
	if d.Source == d.Target {
		return fmt.Errorf("%w: source equals target (%s)", ErrDemandInvalid, d.Source)
	}
	if d.Bandwidth <= 0 || d.Bandwidth > MaxDemandBandwidth {
		return fmt.Errorf("%w: bandwidth %d outside (0,%d]",
			ErrDemandInvalid, d.Bandwidth, MaxDemandBandwidth)
	}

	return nil
}

// BindDemands checks every demand's endpoints against the graph.
// Returns the demands unchanged on success so calls chain naturally.
func BindDemands(g *core.Graph, demands []Demand) ([]Demand, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for i, d := range demands {
		if err := validateDemand(d); err != nil {
			return nil, fmt.Errorf("demand %d: %w", i, err)
		}
		if !g.HasVertex(d.Source) {
			return nil, fmt.Errorf("demand %d: source %q: %w", i, d.Source, ErrDemandInvalid)
		}
		if !g.HasVertex(d.Target) {
			return nil, fmt.Errorf("demand %d: target %q: %w", i, d.Target, ErrDemandInvalid)
		}
	}

	return demands, nil
}
