// prompt.go - handlebars prompt assembly.
package llm

import (
	"fmt"

	"github.com/aymerick/raymond"
)

// DefaultTemplate is the prompt used when no custom template is configured.
// The reply format it requests matches the routing package's plan grammar.
const DefaultTemplate = `You are a network routing assistant.

1. Problem description:
{{problem}}

2. Network topology (GML; every edge lists its weight and capacity in bandwidth units):
{{graph}}

3. Flow demands (one "source target bandwidth" per line):
{{flows}}

4. Produce a routing plan. Write one route per line as a node sequence with
"->" separators followed by the allocated bandwidth, for example:

0 -> 3 -> 7 : 2

The aggregate bandwidth on every edge must stay within its capacity, and
each demand's routes must deliver its requested bandwidth. Keep the maximum
link utilization as low as you can. After the routes you may explain your
reasoning.
`

// PromptData carries the three description blocks a prompt is built from.
type PromptData struct {
	Problem string
	Graph   string
	Flows   string
}

// RenderPrompt instantiates a handlebars template with the given data.
// An empty template selects DefaultTemplate.
func RenderPrompt(template string, data PromptData) (string, error) {
	if template == "" {
		template = DefaultTemplate
	}

	out, err := raymond.Render(template, map[string]interface{}{
		"problem": data.Problem,
		"graph":   data.Graph,
		"flows":   data.Flows,
	})
	if err != nil {
		return "", fmt.Errorf("llm: rendering prompt template: %w", err)
	}

	return out, nil
}
