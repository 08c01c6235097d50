package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"person-roster/internal/logger"
)

// DefaultStepTimeout bounds how long a single component may take to stop
const DefaultStepTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

type step struct {
	name      string
	component Shutdownable
}

// Manager stops registered components in reverse registration order,
// once, on a signal or on an explicit call
type Manager struct {
	steps       []step
	logger      logger.Logger
	stepTimeout time.Duration
	mu          sync.Mutex
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
	sigChan     chan os.Signal
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:      log,
		stepTimeout: DefaultStepTimeout,
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// SetStepTimeout overrides DefaultStepTimeout
func (m *Manager) SetStepTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stepTimeout = d
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, step{name: name, component: component})
}

// Listen shuts down on SIGINT/SIGTERM and then calls onSignal
func (m *Manager) Listen(onSignal func()) {
	m.sigChan = make(chan os.Signal, 1)
	signal.Notify(m.sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-m.sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

// Shutdown runs every registered step. Later calls are no-ops.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	if m.sigChan != nil {
		signal.Stop(m.sigChan)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.steps),
	})

	m.cancel()

	for i := len(m.steps) - 1; i >= 0; i-- {
		s := m.steps[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			s.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": s.name,
			})
		case <-time.After(m.stepTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": s.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Func adapts a plain function to Shutdownable
type Func func()

func (f Func) Shutdown() { f() }
