// Package agent drives the conversational model through the tool-call loop:
// declare tools, execute the calls the model requests, feed results back,
// and stop when the model produces a final text answer.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"
)

const defaultMaxIterations = 10

// parameterizedTool lets tools expose a structured parameter schema instead
// of the single-string default.
type parameterizedTool interface {
	tools.Tool
	Parameters() map[string]interface{}
}

// Agent holds one conversation against the model. It is safe for use from a
// single connection; turns are strictly sequential.
type Agent struct {
	llm           llms.Model
	registry      map[string]tools.Tool
	toolDefs      []llms.Tool
	maxIterations int

	mu      sync.Mutex
	history []llms.MessageContent
}

// Option configures an Agent.
type Option func(*Agent)

// WithMaxIterations caps the number of tool rounds in one turn. The cap is
// a defensive bound against a model that keeps requesting tools forever.
func WithMaxIterations(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxIterations = n
		}
	}
}

// New builds an agent over the given model and toolset. Tool names are
// checked at registration time; a duplicate is a configuration error.
func New(llm llms.Model, systemPrompt string, toolset []tools.Tool, opts ...Option) (*Agent, error) {
	registry := make(map[string]tools.Tool, len(toolset))
	for _, t := range toolset {
		if _, exists := registry[t.Name()]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", t.Name())
		}
		registry[t.Name()] = t
	}

	a := &Agent{
		llm:           llm,
		registry:      registry,
		toolDefs:      toolDefinitions(toolset),
		maxIterations: defaultMaxIterations,
		history: []llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func toolDefinitions(toolset []tools.Tool) []llms.Tool {
	defs := make([]llms.Tool, 0, len(toolset))
	for _, t := range toolset {
		params := defaultParameters()
		if pt, ok := t.(parameterizedTool); ok {
			if custom := pt.Parameters(); custom != nil {
				params = custom
			}
		}
		defs = append(defs, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  params,
			},
		})
	}
	return defs
}

func defaultParameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"__arg1": map[string]string{"title": "__arg1", "type": "string"},
		},
		"required": []string{"__arg1"},
	}
}

// Run processes one user turn: it loops through model responses, executing
// every requested tool call and feeding the structured result back, until
// the model answers with text or the iteration cap is reached.
func (a *Agent) Run(ctx context.Context, userInput string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = append(a.history, llms.TextParts(llms.ChatMessageTypeHuman, userInput))

	for i := 0; i < a.maxIterations; i++ {
		resp, err := a.llm.GenerateContent(ctx, a.history, llms.WithTools(a.toolDefs))
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("no choices in model response")
		}
		choice := resp.Choices[0]

		calls := choice.ToolCalls
		if len(calls) == 0 && choice.FuncCall != nil {
			// Legacy function-call shape from older providers.
			calls = []llms.ToolCall{{Type: "function", FunctionCall: choice.FuncCall}}
		}

		if len(calls) == 0 {
			text := strings.TrimSpace(choice.Content)
			if text == "" {
				text = "Operation completed successfully."
			}
			a.history = append(a.history, llms.TextParts(llms.ChatMessageTypeAI, text))
			return text, nil
		}

		assistant := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		if choice.Content != "" {
			assistant.Parts = append(assistant.Parts, llms.TextContent{Text: choice.Content})
		}
		for _, tc := range calls {
			assistant.Parts = append(assistant.Parts, llms.ToolCall{
				ID:           tc.ID,
				Type:         tc.Type,
				FunctionCall: tc.FunctionCall,
			})
		}
		a.history = append(a.history, assistant)

		for _, tc := range calls {
			name := tc.FunctionCall.Name
			log.Printf("Invoking tool %s with %s", name, tc.FunctionCall.Arguments)
			content := a.execute(ctx, name, tc.FunctionCall.Arguments)
			a.history = append(a.history, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: tc.ID,
					Name:       name,
					Content:    content,
				}},
			})
		}
	}

	log.Printf("Stopping tool loop after %d iterations", a.maxIterations)
	return "I couldn't complete that within the allowed number of tool calls. Please try a more specific request.", nil
}

// execute dispatches a single tool call. Unknown names and tool errors both
// come back as structured failure envelopes so the loop keeps going.
func (a *Agent) execute(ctx context.Context, name, args string) string {
	tool, ok := a.registry[name]
	if !ok {
		return toolFailure("Unknown tool: " + name)
	}
	out, err := tool.Call(ctx, args)
	if err != nil {
		return toolFailure("Tool execution error: " + err.Error())
	}
	return out
}

func toolFailure(msg string) string {
	b, err := json.Marshal(map[string]any{"success": false, "error": msg})
	if err != nil {
		return `{"success":false,"error":"internal error"}`
	}
	return string(b)
}

// Reset discards all prior turns, keeping only the system message. No tool
// state survives a reset because there is no local cache.
func (a *Agent) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = a.history[:1]
}
