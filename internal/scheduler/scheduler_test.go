package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJob(t *testing.T) {
	s := scheduler.New()
	var runs int32
	require.NoError(t, s.Add("tick", "@every 1s", func(context.Context) {
		atomic.AddInt32(&runs, 1)
	}))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_RejectsBadSpec(t *testing.T) {
	s := scheduler.New()

	err := s.Add("broken", "not a spec", func(context.Context) {})

	assert.Error(t, err)
}
