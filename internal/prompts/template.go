// Package prompts implements the MCP prompt templates exposed by the
// server: canned, parameterized requests the host can surface as
// suggested queries. Templates perform no I/O; each one assembles
// instructional text from its arguments and nothing else.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Arg describes one free-text placeholder of a template.
type Arg struct {
	Name        string
	Description string
}

// Template is a single prompt: a name, its arguments, and a pure
// Build function that turns argument values into the prompt messages.
type Template struct {
	Name        string
	Description string
	Args        []Arg
	Build       func(args map[string]string) (string, []mcp.PromptMessage)
}

// Definition returns the MCP prompt definition for registration.
func (t Template) Definition() mcp.Prompt {
	opts := []mcp.PromptOption{mcp.WithPromptDescription(t.Description)}
	for _, a := range t.Args {
		opts = append(opts, mcp.WithArgument(a.Name, mcp.ArgumentDescription(a.Description)))
	}
	return mcp.NewPrompt(t.Name, opts...)
}

// Handle processes a get-prompt request for this template.
func (t Template) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments
	if args == nil {
		args = map[string]string{}
	}

	description, messages := t.Build(args)
	return &mcp.GetPromptResult{
		Description: description,
		Messages:    messages,
	}, nil
}

// All returns every prompt template the server registers.
func All() []Template {
	var all []Template
	all = append(all, trackingTemplates()...)
	all = append(all, reportTemplates()...)
	all = append(all, analysisTemplates()...)
	all = append(all, taskTemplates()...)
	return all
}

// arg reads an argument with a fallback for when it is omitted.
func arg(args map[string]string, key, fallback string) string {
	if v, ok := args[key]; ok && v != "" {
		return v
	}
	return fallback
}

func user(text string) mcp.PromptMessage {
	return mcp.PromptMessage{Role: mcp.RoleUser, Content: mcp.NewTextContent(text)}
}

func assistant(text string) mcp.PromptMessage {
	return mcp.PromptMessage{Role: mcp.RoleAssistant, Content: mcp.NewTextContent(text)}
}
