package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/chemcat/chemcat/ent"
	"github.com/chemcat/chemcat/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMRequestRecord, len(events))
	for i, ev := range events {
		out[i] = entLLMEventToRecord(ev)
	}
	return out, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int) (*LLMRequestRecord, error) {
	ev, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM request event: %w", err)
	}
	rec := entLLMEventToRecord(ev)
	return &rec, nil
}

func entLLMEventToRecord(ev *ent.LLMRequestEvent) LLMRequestRecord {
	return LLMRequestRecord{
		ID: ev.ID,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     ev.Provider,
			Model:        ev.Model,
			Purpose:      ev.Purpose,
			InputTokens:  ev.InputTokens,
			OutputTokens: ev.OutputTokens,
			LatencyMs:    ev.LatencyMs,
			Success:      ev.Success,
			ErrorMessage: ev.ErrorMessage,
			RequestBody:  ev.RequestBody,
			ResponseBody: ev.ResponseBody,
		},
		Timestamp: ev.Timestamp,
	}
}

// LLMUsage aggregates in Go rather than SQL; a single learner's event
// log stays small.
func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byModel := make(map[string]*LLMUsage)
	for _, ev := range events {
		u, ok := byModel[ev.Model]
		if !ok {
			u = &LLMUsage{Model: ev.Model}
			byModel[ev.Model] = u
		}
		u.Requests++
		if !ev.Success {
			u.Failures++
		}
		u.InputTokens += ev.InputTokens
		u.OutputTokens += ev.OutputTokens
	}

	out := make([]LLMUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}
