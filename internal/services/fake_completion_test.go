package services

import (
	"context"
	"sync"
	"time"
	"tripplanner/pkg/logger"
)

type fakeCompletion struct {
	mu         sync.Mutex
	text       string
	err        error
	block      bool
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeCompletion) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func testOptions() PlannerOptions {
	return PlannerOptions{CompletionTimeout: time.Second, RemovalStrategy: RemoveByCost}
}

func testLogger() *logger.Logger {
	return logger.NewNop()
}
