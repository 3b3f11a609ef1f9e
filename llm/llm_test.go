package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosephLeeeeeee/FlowLM/llm"
)

func TestNew_Validation(t *testing.T) {
	_, err := llm.New(llm.Config{Model: "gpt-4o"})
	assert.ErrorIs(t, err, llm.ErrNoAPIKey)

	_, err = llm.New(llm.Config{APIKey: "sk-test"})
	assert.ErrorIs(t, err, llm.ErrNoModel)

	c, err := llm.New(llm.Config{APIKey: "sk-test", Model: "gpt-4o", BaseURL: "http://localhost:8000/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", c.Model())
}

func TestRenderPrompt_DefaultTemplate(t *testing.T) {
	out, err := llm.RenderPrompt("", llm.PromptData{
		Problem: "route the flows",
		Graph:   "graph [ ]",
		Flows:   "0 2 3",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "route the flows")
	assert.Contains(t, out, "graph [ ]")
	assert.Contains(t, out, "0 2 3")
	// The reply-format instruction must survive templating.
	assert.Contains(t, out, "0 -> 3 -> 7 : 2")
}

func TestRenderPrompt_CustomTemplate(t *testing.T) {
	out, err := llm.RenderPrompt("flows first: {{flows}}", llm.PromptData{Flows: "1 4 2"})
	require.NoError(t, err)
	assert.Equal(t, "flows first: 1 4 2", out)
}

func TestRenderPrompt_BadTemplate(t *testing.T) {
	_, err := llm.RenderPrompt("{{#if}}", llm.PromptData{})
	assert.Error(t, err)
}
