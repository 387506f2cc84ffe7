package pipeline

import (
	"context"
	"sync"
)

// BusyCounter tracks in-flight requests. It never goes below zero.
type BusyCounter struct {
	mu       sync.Mutex
	inFlight int
	onChange func(busy bool)
}

// NewBusyCounter creates a counter; onChange, if set, runs when the busy state flips.
func NewBusyCounter(onChange func(busy bool)) *BusyCounter {
	return &BusyCounter{onChange: onChange}
}

func (b *BusyCounter) Inc() {
	b.mu.Lock()
	b.inFlight++
	flipped := b.inFlight == 1
	b.mu.Unlock()

	if flipped && b.onChange != nil {
		b.onChange(true)
	}
}

func (b *BusyCounter) Dec() {
	b.mu.Lock()
	wasBusy := b.inFlight > 0
	b.inFlight = max(0, b.inFlight-1)
	flipped := wasBusy && b.inFlight == 0
	b.mu.Unlock()

	if flipped && b.onChange != nil {
		b.onChange(false)
	}
}

func (b *BusyCounter) InFlight() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.inFlight
}

// Transformer counts the request as in flight until the rest of the chain returns,
// whatever the outcome.
func (b *BusyCounter) Transformer() Transformer {
	return func(ctx context.Context, req *Request, next Handler) (*Response, error) {
		b.Inc()
		defer b.Dec()

		return next(ctx, req)
	}
}
