package lifecycle

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrStopped 表示管理器已经广播停机，不再接受新的服务
var ErrStopped = errors.New("lifecycle: manager already stopped")

// Manager 登记后台服务，并在停机时等待它们注销。
// 应用持有两个实例：graceful 阶段让服务处理完手头的工作，forceful 阶段要求立即退出。
type Manager struct {
	name string

	mu      sync.Mutex
	wg      sync.WaitGroup
	running map[string]time.Time
	stopped bool

	ctx    context.Context
	cancel context.CancelFunc
}

func NewManager(name string) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		name:    name,
		running: make(map[string]time.Time),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// NewServiceHandle 登记一个服务。同名服务在注销前不能再次登记。
func (m *Manager) NewServiceHandle(service string) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return nil, errors.Wrapf(ErrStopped, "register %s/%s", m.name, service)
	}
	if _, ok := m.running[service]; ok {
		return nil, fmt.Errorf("lifecycle %s: service %q already registered", m.name, service)
	}
	m.running[service] = time.Now()
	m.wg.Add(1)
	log.Debug().Str("manager", m.name).Str("service", service).Msg("服务已登记")

	return &Handle{
		service: service,
		ctx:     m.ctx,
		release: func() { m.deregister(service) },
	}, nil
}

// Go 登记服务并在新的goroutine中运行 run，run 返回时自动注销
func (m *Manager) Go(service string, run func(h *Handle)) error {
	h, err := m.NewServiceHandle(service)
	if err != nil {
		return err
	}
	go func() {
		defer h.Close()
		run(h)
	}()
	return nil
}

func (m *Manager) deregister(service string) {
	m.mu.Lock()
	started := m.running[service]
	delete(m.running, service)
	m.mu.Unlock()

	log.Debug().Str("manager", m.name).Str("service", service).
		Dur("uptime", time.Since(started)).Msg("服务已注销")
	m.wg.Done()
}

// Running 返回仍未注销的服务名，按字母排序
func (m *Manager) Running() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.running))
	for name := range m.running {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shutdown 广播停机信号，可重复调用
func (m *Manager) Shutdown() {
	m.mu.Lock()
	first := !m.stopped
	m.stopped = true
	count := len(m.running)
	m.mu.Unlock()

	if first {
		log.Info().Str("manager", m.name).Int("services", count).Msg("广播停机信号")
	}
	m.cancel()
}

// WaitWithTimeout 等待所有服务注销。超时时返回仍在运行的服务名，全部退出时返回nil。
func (m *Manager) WaitWithTimeout(timeout time.Duration) []string {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return m.Running()
	}
}
