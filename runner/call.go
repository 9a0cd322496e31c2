package runner

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tvolkar/flightslt/models"
)

type CallState int

const (
	CallStateExecuting CallState = iota
	CallStateFinished
	CallStateFailed
	CallStateCanceled
)

func (s CallState) String() string {
	switch s {
	case CallStateExecuting:
		return "executing"
	case CallStateFinished:
		return "finished"
	case CallStateFailed:
		return "failed"
	case CallStateCanceled:
		return "canceled"
	default:
		return ""
	}
}

type CallDetails struct {
	ID    string
	Query string
	State CallState
	Took  time.Duration
}

func (cd *CallDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		ID    string `json:"id"`
		Query string `json:"query"`
		State string `json:"state"`
		Took  int64  `json:"took_ms"`
	}{
		ID:    cd.ID,
		Query: cd.Query,
		State: cd.State.String(),
		Took:  cd.Took.Milliseconds(),
	})
}

// Call represents a single query sent through the runner.
// It contains metadata fields, state and a context cancelation function.
type Call struct {
	id     string
	query  string
	cancel func()
	done   chan struct{}
	log    models.Logger

	mu     sync.Mutex
	state  CallState
	result *models.Result
	err    error
	took   time.Duration
}

// Start runs the query in the background. The callback, if given,
// fires once with the final call details after the call settles.
func (r *Runner) Start(query string, onDone func(*CallDetails)) *Call {
	c := &Call{
		id:    uuid.New().String(),
		query: query,
		state: CallStateExecuting,
		done:  make(chan struct{}),
		log:   r.log,
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		defer close(c.done)
		defer cancel()
		start := time.Now()

		result, err := r.Run(ctx, query)

		c.mu.Lock()
		c.took = time.Since(start)
		if err != nil {
			c.state = CallStateFailed
			if errors.Is(err, context.Canceled) {
				c.state = CallStateCanceled
			}
			c.err = err
		} else {
			c.state = CallStateFinished
			c.result = result
		}
		c.mu.Unlock()

		if err != nil {
			c.log.Error(err.Error())
		}
		if onDone != nil {
			onDone(c.Details())
		}
	}()

	return c
}

func (c *Call) GetID() string {
	return c.id
}

// Cancel aborts an executing call. Settled calls are left alone.
func (c *Call) Cancel() {
	c.mu.Lock()
	executing := c.state == CallStateExecuting
	c.mu.Unlock()

	if executing && c.cancel != nil {
		c.cancel()
	}
}

// Wait blocks until the call settles and returns its result.
func (c *Call) Wait() (*models.Result, error) {
	<-c.done

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.err
}

func (c *Call) Details() *CallDetails {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &CallDetails{
		ID:    c.id,
		Query: c.query,
		State: c.state,
		Took:  c.took,
	}
}
