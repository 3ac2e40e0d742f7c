package sprite

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Loop errors.
var (
	// ErrLoopRunning is returned when Start is called on a running loop.
	ErrLoopRunning = errors.New("sprite: loop already running")

	// ErrNilRenderer is returned when a loop is created without a renderer.
	ErrNilRenderer = errors.New("sprite: renderer is nil")

	// ErrNilRegistry is returned when a loop is created without a registry.
	ErrNilRegistry = errors.New("sprite: registry is nil")

	// ErrLoopStopped is returned when Start is called on a stopped loop.
	ErrLoopStopped = errors.New("sprite: loop already stopped")
)

// defaultTickInterval approximates a 60 Hz display refresh.
const defaultTickInterval = time.Second / 60

// Loop drives frames at a fixed tick: run the update callback, clear, draw
// every enabled Drawable in registry insertion order, flush. It replaces the
// ambient per-refresh callback a browser host would provide with an explicit
// start/stop control.
//
// Sprites are not synchronized, so once the loop is running all component
// mutation must happen on the loop goroutine, inside the WithUpdate callback.
//
// A Loop is one-shot: once stopped it cannot be restarted.
type Loop struct {
	renderer Renderer
	registry *Registry
	interval time.Duration
	update   func()

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	frames atomic.Uint64
}

// LoopOption configures a Loop during creation.
type LoopOption func(*Loop)

// WithTickInterval sets the frame interval. Default is 1/60 s.
func WithTickInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithUpdate registers fn to run at the start of every frame, before any
// drawing, on the goroutine driving the frames. It is the place for game
// logic to mutate components: Sprite state carries no locks, so touching it
// from another goroutine while the loop runs is a data race.
func WithUpdate(fn func()) LoopOption {
	return func(l *Loop) {
		l.update = fn
	}
}

// NewLoop creates a frame loop over the given renderer and registry.
func NewLoop(r Renderer, reg *Registry, opts ...LoopOption) (*Loop, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	l := &Loop{
		renderer: r,
		registry: reg,
		interval: defaultTickInterval,
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Start launches the frame goroutine. It returns immediately; frames run
// until Stop is called or ctx is canceled. A loop that has already been
// stopped cannot be started again.
func (l *Loop) Start(ctx context.Context) error {
	select {
	case <-l.stopChan:
		return ErrLoopStopped
	default:
	}
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	Logger().Info("loop started", "interval", l.interval)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-l.stopChan:
				return
			case <-ticker.C:
				l.Frame()
			}
		}
	}()
	return nil
}

// Stop ends the loop and waits for the frame goroutine to exit.
// Safe to call multiple times and before Start.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
	l.wg.Wait()
	if l.running.CompareAndSwap(true, false) {
		Logger().Info("loop stopped", "frames", l.frames.Load())
	}
}

// Frames returns the number of frames completed so far.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Frame runs one frame synchronously: update, clear, query-and-draw, flush.
// The loop goroutine calls this once per tick; tests and external frame
// drivers may call it directly.
func (l *Loop) Frame() {
	if l.update != nil {
		l.update()
	}
	l.renderer.Clear()
	for _, d := range Get[Drawable](l.registry) {
		if d.Enabled() {
			d.Draw(l.renderer)
		}
	}
	if err := l.renderer.Flush(); err != nil {
		Logger().Warn("flush failed", "err", err)
	}
	l.frames.Add(1)
}
