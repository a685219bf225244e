package agent

import (
	"context"
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

const (
	VoiceAgentName   = "Voice Agent"
	WeatherAgentName = "Weather Agent"
)

// Tool is a function the model may call. Run receives the raw JSON arguments.
type Tool struct {
	Definition openai.FunctionDefinition
	Run        func(ctx context.Context, arguments string) (string, error)
}

// Agent is a named set of instructions and tools. Handoffs lists the agents it may transfer the conversation to.
type Agent struct {
	Name               string
	Instructions       string
	HandoffDescription string
	Tools              []Tool
	Handoffs           []*Agent
}

// NewWeatherAgent builds the specialist that answers weather questions through lookup
func NewWeatherAgent(lookup WeatherLookup) *Agent {
	return &Agent{
		Name:               WeatherAgentName,
		Instructions:       "Talk with a New York accent",
		HandoffDescription: "This agent is an expert in weather",
		Tools:              []Tool{NewGetWeatherTool(lookup)},
	}
}

// NewVoiceAgent builds the general assistant that hands weather questions off to weatherAgent
func NewVoiceAgent(weatherAgent *Agent) *Agent {
	return &Agent{
		Name:         VoiceAgentName,
		Instructions: "You are a helpful assistant. Hand off to the weather expert whenever the user asks about the weather.",
		Handoffs:     []*Agent{weatherAgent},
	}
}

// tool looks up a tool by function name
func (a *Agent) tool(name string) (Tool, bool) {
	for _, t := range a.Tools {
		if t.Definition.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// handoff looks up the agent reached through a transfer tool name
func (a *Agent) handoff(name string) (*Agent, bool) {
	for _, target := range a.Handoffs {
		if HandoffToolName(target) == name {
			return target, true
		}
	}
	return nil, false
}

// openAITools lists the function tools and one transfer tool per handoff target
func (a *Agent) openAITools() []openai.Tool {
	tools := make([]openai.Tool, 0, len(a.Tools)+len(a.Handoffs))
	for _, t := range a.Tools {
		definition := t.Definition
		tools = append(tools, openai.Tool{Type: openai.ToolTypeFunction, Function: &definition})
	}
	for _, target := range a.Handoffs {
		tools = append(tools, openai.Tool{Type: openai.ToolTypeFunction, Function: &openai.FunctionDefinition{
			Name:        HandoffToolName(target),
			Description: "Handoff to the " + target.Name + ". " + target.HandoffDescription,
			Parameters:  json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`),
		}})
	}
	return tools
}
