package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"weather-agent/pkg/log"
	"weather-agent/pkg/msg"
)

// ErrMaxTurns is returned when the model keeps calling tools past the turn budget
var ErrMaxTurns = errors.New("agent turn limit reached")

// ChatClient is the part of the go-openai client the runner needs
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewOpenAIClient builds a go-openai client, pointed at baseURL when it is set
func NewOpenAIClient(apiKey string, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if base := strings.TrimSpace(baseURL); base != "" {
		cfg.BaseURL = base
	}
	return openai.NewClientWithConfig(cfg)
}

type RunResult struct {
	RunID     string
	LastAgent string
	Output    string
	Turns     int
	ToolCalls int
	Handoffs  []string
	Elapsed   time.Duration
}

type Runner struct {
	client   ChatClient
	model    string
	maxTurns int
}

func NewRunner(client ChatClient, model string, maxTurns int) *Runner {
	if maxTurns <= 0 {
		maxTurns = 10
	}
	return &Runner{client: client, model: model, maxTurns: maxTurns}
}

// Run sends prompt to start and keeps executing tool calls until the active agent answers in plain text.
// A transfer tool call swaps the active agent's instructions and tools for the rest of the run.
func (r *Runner) Run(ctx context.Context, start *Agent, prompt string) (*RunResult, error) {
	started := time.Now()
	result := &RunResult{RunID: uuid.NewString()}
	active := start

	log.Info(msg.GetMessage("agent.run-start", result.RunID, active.Name), zap.String("run_id", result.RunID))

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: active.Instructions},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}

	for result.Turns < r.maxTurns {
		result.Turns++

		resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    r.model,
			Messages: messages,
			Tools:    active.openAITools(),
		})
		if err != nil {
			return nil, fmt.Errorf("openai completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("no completion choices")
		}

		reply := resp.Choices[0].Message
		if len(reply.ToolCalls) == 0 {
			result.LastAgent = active.Name
			result.Output = strings.TrimSpace(reply.Content)
			if result.Output == "" {
				result.Output = msg.GetMessage("agent.no-response")
			}
			result.Elapsed = time.Since(started)
			return result, nil
		}

		messages = append(messages, reply)
		replyAgent := active
		for _, call := range reply.ToolCalls {
			output, next := r.dispatch(ctx, result, replyAgent, call)
			if next != nil {
				active = next
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    output,
				ToolCallID: call.ID,
			})
		}
		// The system message always carries the active agent's instructions.
		messages[0].Content = active.Instructions
	}

	log.Warn(msg.GetMessage("agent.max-turns", r.maxTurns), zap.String("run_id", result.RunID))
	return nil, fmt.Errorf("%w: %d", ErrMaxTurns, r.maxTurns)
}

// dispatch executes one tool call against the agent that produced the reply and returns the text sent back
// to the model. A transfer call also returns the target agent, which becomes active from the next turn, so
// the remaining calls of the same reply still resolve against current.
func (r *Runner) dispatch(ctx context.Context, result *RunResult, current *Agent, call openai.ToolCall) (string, *Agent) {
	name := call.Function.Name

	if target, ok := current.handoff(name); ok {
		log.Info(msg.GetMessage("agent.handoff", current.Name, target.Name), zap.String("run_id", result.RunID))
		result.Handoffs = append(result.Handoffs, target.Name)
		return fmt.Sprintf(`{"assistant":%q}`, target.Name), target
	}

	tool, ok := current.tool(name)
	if !ok {
		return fmt.Sprintf("error: unknown tool %s", name), nil
	}

	result.ToolCalls++
	log.Info(msg.GetMessage("agent.tool-call", current.Name, name),
		zap.String("run_id", result.RunID),
		zap.String("arguments", call.Function.Arguments))

	output, err := tool.Run(ctx, call.Function.Arguments)
	if err != nil {
		log.Warn("Tool call failed", zap.String("run_id", result.RunID), zap.String("tool", name), zap.Error(err))
		return "error: " + err.Error(), nil
	}
	return output, nil
}
