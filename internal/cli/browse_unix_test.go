//go:build unix

package cli

import (
	"context"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingQuitter struct{ n atomic.Int32 }

func (q *countingQuitter) Quit() { q.n.Add(1) }

func TestSetupSignalHandler(t *testing.T) {
	q := &countingQuitter{}
	stop := setupSignalHandler(context.Background(), q)
	t.Cleanup(stop)

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))
	assert.Eventually(t, func() bool { return q.n.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestSetupSignalHandler_Stop(t *testing.T) {
	q := &countingQuitter{}
	stop := setupSignalHandler(context.Background(), q)
	stop()
	assert.Zero(t, q.n.Load())
}
