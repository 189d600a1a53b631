package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"omi-relay/internal/agent"
	"omi-relay/pkg/openai"
)

// Run submits prompt on a fresh thread and walks the run through
// submitted, awaiting_model, awaiting_tool_result until it completes or fails.
func (r *runner) Run(ctx context.Context, prompt string) (Result, error) {
	res := Result{}
	fail := func(err error) (Result, error) {
		res.Transitions = append(res.Transitions, StateFailed)
		r.l.Warnf(ctx, "%s: run %s failed after %d polls: %v", LogPrefixRun, res.RunID, res.Polls, err)
		return res, err
	}

	thread, err := r.api.CreateThread(ctx)
	if err != nil {
		return fail(fmt.Errorf("create thread: %w", err))
	}
	res.ThreadID = thread.ID

	if err := r.api.CreateMessage(ctx, thread.ID, openai.CreateMessageRequest{Role: "user", Content: prompt}); err != nil {
		return fail(fmt.Errorf("create message: %w", err))
	}

	run, err := r.api.CreateRun(ctx, thread.ID, openai.CreateRunRequest{
		AssistantID:  r.cfg.AssistantID,
		Instructions: r.cfg.Instructions,
	})
	if err != nil {
		return fail(fmt.Errorf("create run: %w", err))
	}
	res.RunID = run.ID
	res.Transitions = append(res.Transitions, StateSubmitted)

	attempt := 0
	for {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		switch run.Status {
		case openai.RunStatusQueued, openai.RunStatusInProgress:
			res.enter(StateAwaitingModel)
			if res.Polls >= r.cfg.Backoff.MaxPolls {
				return fail(ErrPollLimitExceeded)
			}
			if err := r.sleeper.Sleep(ctx, r.cfg.Backoff.Delay(attempt)); err != nil {
				return fail(err)
			}
			attempt++
			res.Polls++
			run, err = r.api.GetRun(ctx, thread.ID, run.ID)
			if err != nil {
				return fail(fmt.Errorf("get run: %w", err))
			}

		case openai.RunStatusRequiresAction:
			res.enter(StateAwaitingToolResult)
			if res.Polls >= r.cfg.Backoff.MaxPolls {
				return fail(ErrPollLimitExceeded)
			}
			outputs, err := r.resolveToolCalls(ctx, run)
			if err != nil {
				return fail(err)
			}
			res.ToolCalls += len(outputs)
			res.Polls++
			run, err = r.api.SubmitToolOutputs(ctx, thread.ID, run.ID, openai.SubmitToolOutputsRequest{ToolOutputs: outputs})
			if err != nil {
				return fail(fmt.Errorf("submit tool outputs: %w", err))
			}
			// a fresh wait for the model starts from the initial delay
			attempt = 0

		case openai.RunStatusCompleted:
			answer, err := r.readReply(ctx, thread.ID)
			if err != nil {
				return fail(err)
			}
			res.Answer = answer
			res.Transitions = append(res.Transitions, StateCompleted)
			r.l.Debugf(ctx, "%s: run %s completed after %d polls, %d tool calls", LogPrefixRun, run.ID, res.Polls, res.ToolCalls)
			return res, nil

		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusCancelling,
			openai.RunStatusExpired, openai.RunStatusIncomplete:
			if run.LastError != nil {
				return fail(fmt.Errorf("%w: %s: %s: %s", ErrRunFailed, run.Status, run.LastError.Code, run.LastError.Message))
			}
			return fail(fmt.Errorf("%w: %s", ErrRunFailed, run.Status))

		default:
			return fail(fmt.Errorf("%w: %q", ErrUnexpectedStatus, run.Status))
		}
	}
}

// enter records s unless it is already the current state.
func (res *Result) enter(s State) {
	if n := len(res.Transitions); n > 0 && res.Transitions[n-1] == s {
		return
	}
	res.Transitions = append(res.Transitions, s)
}

// resolveToolCalls runs every requested function. Tool failures are reported
// back to the model as {"error": ...} rather than aborting the run.
func (r *runner) resolveToolCalls(ctx context.Context, run *openai.Run) ([]openai.ToolOutput, error) {
	if run.RequiredAction == nil || len(run.RequiredAction.SubmitToolOutputs.ToolCalls) == 0 {
		return nil, fmt.Errorf("%w: requires_action without tool calls", ErrUnexpectedStatus)
	}

	calls := run.RequiredAction.SubmitToolOutputs.ToolCalls
	outputs := make([]openai.ToolOutput, 0, len(calls))
	for _, call := range calls {
		var result interface{}

		var args map[string]interface{}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			result = map[string]string{"error": "invalid arguments: " + err.Error()}
		} else if r.tools == nil {
			result = map[string]string{"error": agent.ErrToolNotFound.Error()}
		} else {
			r.l.Infof(ctx, "%s: calling tool %s", LogPrefixRun, call.Function.Name)
			out, err := r.tools.Execute(ctx, call.Function.Name, args)
			if err != nil {
				r.l.Warnf(ctx, "%s: tool %s failed: %v", LogPrefixRun, call.Function.Name, err)
				result = map[string]string{"error": err.Error()}
			} else {
				result = out
			}
		}

		raw, err := json.Marshal(result)
		if err != nil {
			raw = []byte(`{"error":"unencodable tool result"}`)
		}
		outputs = append(outputs, openai.ToolOutput{ToolCallID: call.ID, Output: string(raw)})
	}
	return outputs, nil
}

func (r *runner) readReply(ctx context.Context, threadID string) (string, error) {
	list, err := r.api.ListMessages(ctx, threadID, replyLookback)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}
	// newest first
	for _, msg := range list.Data {
		if msg.Role != "assistant" {
			continue
		}
		if text := msg.Text(); text != "" {
			return text, nil
		}
	}
	return "", ErrNoAssistantReply
}
