// Package llm obtains candidate routing plans from a large language model
// through any OpenAI-compatible chat-completions endpoint.
//
// The client wraps sashabaranov/go-openai with a configurable base URL so
// self-hosted gateways and proxies work unchanged. Prompts are assembled
// from a handlebars template ({{problem}}, {{graph}}, {{flows}} slots);
// the default template ships with the package and can be replaced from a
// file.
//
// The model's reply is free text; parsing it into a routing.Plan is the
// routing package's job. This package only transports text.
package llm
