package assistant_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
)

// fakeLLM devuelve las respuestas en orden y registra los mensajes recibidos.
type fakeLLM struct {
	mu       sync.Mutex
	replies  []string
	err      error
	received [][]ports.Message
}

func (f *fakeLLM) Generate(_ context.Context, msgs []ports.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, msgs)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r, nil
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.received)
}

type stockCall struct {
	sku, soh, location int64
}

type fakeStock struct {
	getResp json.RawMessage
	setResp json.RawMessage
	err     error
	gets    []stockCall
	sets    []stockCall
}

func (f *fakeStock) GetStock(_ context.Context, sku, location int64) (json.RawMessage, error) {
	f.gets = append(f.gets, stockCall{sku: sku, location: location})
	return f.getResp, f.err
}

func (f *fakeStock) SetStock(_ context.Context, sku, soh, location int64) (json.RawMessage, error) {
	f.sets = append(f.sets, stockCall{sku: sku, soh: soh, location: location})
	return f.setResp, f.err
}

type fakeEvents struct {
	resp    json.RawMessage
	err     error
	queries []ports.EventQuery
}

func (f *fakeEvents) FetchEvents(_ context.Context, q ports.EventQuery) (json.RawMessage, error) {
	f.queries = append(f.queries, q)
	return f.resp, f.err
}

type fakeRecorder struct {
	queries []string
	replies [][2]string
}

func (r *fakeRecorder) ObserveQuery(intent string) { r.queries = append(r.queries, intent) }
func (r *fakeRecorder) ObserveReply(intent, kind string) {
	r.replies = append(r.replies, [2]string{intent, kind})
}
