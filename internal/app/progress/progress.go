package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Config controls progress rendering. Disabled managers are no-ops so
// callers never need to branch.
type Config struct {
	Enabled bool
	Writer  io.Writer
}

type Manager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type Bar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewManager(config Config) *Manager {
	if !config.Enabled {
		return &Manager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &Manager{
		container: container,
		enabled:   true,
	}
}

func (m *Manager) CreateBar(total int, description string) *Bar {
	if !m.enabled || m.container == nil {
		return &Bar{enabled: false}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bar := m.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" "),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncSpace),
		),
	)

	return &Bar{bar: bar, enabled: true}
}

func (b *Bar) Increment() {
	if b.enabled && b.bar != nil {
		b.bar.Increment()
	}
}

func (m *Manager) Wait() {
	if m.enabled && m.container != nil {
		m.container.Wait()
	}
}
