package classifier

import (
	"context"
	"sync"
	"time"
)

// fakeCompletionClient is a scripted CompletionClient.
type fakeCompletionClient struct {
	mu       sync.Mutex
	reply    string
	err      error
	delay    time.Duration
	panicMsg string
	model    string

	calls   int
	lastReq CompletionRequest
}

func (f *fakeCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.mu.Lock()
	f.calls++
	f.lastReq = req
	f.mu.Unlock()

	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func (f *fakeCompletionClient) Model() string {
	if f.model == "" {
		return "fake-model"
	}
	return f.model
}

func (f *fakeCompletionClient) Provider() string { return "fake" }

func (f *fakeCompletionClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
