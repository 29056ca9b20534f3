package lifecycle

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_DuplicateService(t *testing.T) {
	m := NewManager("test")
	h, err := m.NewServiceHandle("dispatcher")
	require.NoError(t, err)

	_, err = m.NewServiceHandle("dispatcher")
	assert.Error(t, err)

	// 注销后同名服务可以重新登记
	h.Close()
	_, err = m.NewServiceHandle("dispatcher")
	assert.NoError(t, err)
}

func TestManager_RejectsAfterShutdown(t *testing.T) {
	m := NewManager("test")
	m.Shutdown()
	m.Shutdown()

	_, err := m.NewServiceHandle("late")
	assert.ErrorIs(t, err, ErrStopped)
	assert.ErrorIs(t, m.Go("late", func(*Handle) {}), ErrStopped)
}

func TestManager_GoDeregistersOnReturn(t *testing.T) {
	m := NewManager("test")
	require.NoError(t, m.Go("worker", func(h *Handle) {
		assert.Equal(t, "worker", h.Service())
		<-h.Done()
	}))
	assert.Equal(t, []string{"worker"}, m.Running())

	m.Shutdown()
	assert.Empty(t, m.WaitWithTimeout(time.Second))
	assert.Empty(t, m.Running())
}

func TestManager_WaitTimeoutReportsStragglers(t *testing.T) {
	m := NewManager("test")
	_, err := m.NewServiceHandle("stuck")
	require.NoError(t, err)
	done, err := m.NewServiceHandle("done")
	require.NoError(t, err)
	done.Close()
	done.Close() // 重复Close不能让WaitGroup计数变为负数

	assert.Equal(t, []string{"stuck"}, m.WaitWithTimeout(20*time.Millisecond))
}

func TestHandle_TickStopsOnShutdown(t *testing.T) {
	m := NewManager("test")
	var calls atomic.Int32
	require.NoError(t, m.Go("ticker", func(h *Handle) {
		h.Tick(time.Millisecond, func(ctx context.Context) {
			calls.Add(1)
		})
	}))

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	m.Shutdown()
	assert.Empty(t, m.WaitWithTimeout(time.Second))
}
