// Package engine owns the polling loop that turns status files on disk
// into a published aggregate status. One background goroutine runs
// discrete cycles (scan, detect transitions, aggregate, publish); wake-up
// sources are a poll ticker, directory change notifications, and explicit
// refresh requests, with bursts debounced into a single cycle.
package engine

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Vladimirbabic/vibestatus/internal/aggregate"
	"github.com/Vladimirbabic/vibestatus/internal/clients/proc"
	"github.com/Vladimirbabic/vibestatus/internal/clients/sound"
	"github.com/Vladimirbabic/vibestatus/internal/clients/watch"
	"github.com/Vladimirbabic/vibestatus/internal/config"
	"github.com/Vladimirbabic/vibestatus/internal/events"
	"github.com/Vladimirbabic/vibestatus/internal/logging"
	"github.com/Vladimirbabic/vibestatus/internal/scanner"
	"github.com/Vladimirbabic/vibestatus/internal/store"
	"github.com/Vladimirbabic/vibestatus/internal/types"
)

// Options configures an Engine. Only Settings is required; nil
// collaborators fall back to real implementations, except Watcher and
// Player which stay absent (polling still covers discovery, and sounds
// are simply never requested).
type Options struct {
	Settings config.Config
	Proc     proc.Checker
	Watcher  watch.Watcher
	Player   sound.Player
	Now      func() time.Time
}

// Engine is the orchestrator. Construct with New, then Start; read
// state via Snapshot or by subscribing to the event bus.
type Engine struct {
	settings config.Config
	scanner  *scanner.Scanner
	store    *store.Store
	proc     proc.Checker
	watcher  watch.Watcher
	player   sound.Player
	bus      *events.Bus
	now      func() time.Time
	log      *logrus.Entry

	// prev is only touched by the run goroutine.
	prev map[string]types.SessionState

	mu            sync.RWMutex
	published     types.Snapshot
	hasPublished  bool
	familyRunning bool

	refresh  chan struct{}
	stopc    chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates an Engine. It does not start any background work.
func New(opts Options) *Engine {
	if opts.Proc == nil {
		opts.Proc = proc.NewRealChecker()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cfg := opts.Settings
	return &Engine{
		settings: cfg,
		scanner:  scanner.New(cfg.Directory, cfg.FilePrefix, cfg.FileSuffix, cfg.SessionTimeout(), opts.Proc),
		store:    store.New(),
		proc:     opts.Proc,
		watcher:  opts.Watcher,
		player:   opts.Player,
		bus:      events.NewBus(),
		now:      opts.Now,
		log:      logging.ForComponent("engine"),
		prev:     make(map[string]types.SessionState),
		refresh:  make(chan struct{}, 1),
		stopc:    make(chan struct{}),
		published: types.Snapshot{
			Aggregate: types.AggregateNotRunning,
			Sessions:  []types.Session{},
		},
	}
}

// Subscribe returns a channel of engine events. The channel closes when
// the engine stops.
func (e *Engine) Subscribe() <-chan events.Event {
	return e.bus.Subscribe()
}

// Snapshot returns the most recently published state.
func (e *Engine) Snapshot() types.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.published
}

// Refresh requests an immediate cycle. The request is a single-slot
// marker: if one is already pending it is coalesced, never queued.
func (e *Engine) Refresh() {
	select {
	case e.refresh <- struct{}{}:
	default:
	}
}

// Start launches the cycle runner goroutine.
func (e *Engine) Start() {
	e.wg.Add(1)
	go e.run()
}

// Stop shuts the engine down and waits for the in-flight cycle, if any.
// After Stop returns no further publishes or sound requests occur. Safe
// to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopc)
		e.wg.Wait()
		if e.watcher != nil {
			e.watcher.Close()
		}
		e.bus.Close()
	})
}

// run is the single cycle runner. Because every cycle executes here
// sequentially, at most one is in flight and published snapshots are
// monotonic in cycle order.
func (e *Engine) run() {
	defer e.wg.Done()

	poll := time.NewTicker(e.settings.PollInterval())
	defer poll.Stop()
	probe := time.NewTicker(e.settings.ProcessCheckInterval())
	defer probe.Stop()

	var watchCh <-chan struct{}
	if e.watcher != nil {
		watchCh = e.watcher.Events()
	}

	e.runCycle()

	for {
		select {
		case <-e.stopc:
			return
		case <-poll.C:
			e.runCycle()
		case <-watchCh:
			if !e.debounce(watchCh) {
				return
			}
			e.runCycle()
		case <-e.refresh:
			if !e.debounce(watchCh) {
				return
			}
			e.runCycle()
		case <-probe.C:
			e.probeFamily()
		}
	}
}

// debounce soaks up follow-on wake-ups for the configured window so a
// burst of filesystem events produces one cycle. Returns false if the
// engine stopped while waiting.
func (e *Engine) debounce(watchCh <-chan struct{}) bool {
	window := e.settings.Debounce()
	if window <= 0 {
		return true
	}

	timer := time.NewTimer(window)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return true
		case <-watchCh:
		case <-e.refresh:
		case <-e.stopc:
			return false
		}
	}
}

// runCycle executes one scan → transitions → aggregate → publish pass.
// A panicking cycle is logged and skipped; the next scheduled cycle
// proceeds normally.
func (e *Engine) runCycle() {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithField("panic", r).Error("status cycle panicked, skipping")
		}
	}()

	now := e.now()
	sessions, errCount := e.scanner.Scan(now)

	current := make(map[string]types.SessionState, len(sessions))
	for id, s := range sessions {
		current[id] = s.Status
	}
	transitions := aggregate.DetectTransitions(e.prev, current)
	e.prev = current

	e.store.Replace(sessions)

	e.publish(types.Snapshot{
		Aggregate:          aggregate.Aggregate(sessions),
		Sessions:           e.store.Sessions(),
		ActiveSessionCount: e.store.Count(),
		ScanErrors:         errCount,
	})
	e.requestSound(transitions)
}

// probeFamily is the slower liveness check of the worker process family.
// When the family reappears while nothing is published as running, an
// immediate cycle is scheduled instead of waiting for the next tick.
func (e *Engine) probeFamily() {
	running := e.proc.IsFamilyRunning(e.settings.ProcessPattern)

	e.mu.Lock()
	was := e.familyRunning
	e.familyRunning = running
	published := e.published.Aggregate
	e.mu.Unlock()

	if running && !was && published == types.AggregateNotRunning {
		e.Refresh()
		return
	}

	if !running {
		// Sessions cannot be live without a worker; age them out here
		// rather than waiting for the next scan to notice.
		e.store.Prune(e.now(), e.settings.SessionTimeout())
		if e.store.Count() == 0 && published != types.AggregateNotRunning {
			e.publish(types.Snapshot{
				Aggregate: types.AggregateNotRunning,
				Sessions:  []types.Session{},
			})
		}
	}
}

// publish records the snapshot and notifies subscribers only when it
// differs from the last published value.
func (e *Engine) publish(snap types.Snapshot) {
	e.mu.Lock()
	changed := !e.hasPublished || snap.Changed(e.published)
	e.published = snap
	e.hasPublished = true
	e.mu.Unlock()

	if changed {
		e.bus.Publish(events.StatusChanged{Snapshot: snap})
	}
}

// requestSound fires at most one sound per cycle, needs_input winning
// when both transitions happened.
func (e *Engine) requestSound(t aggregate.Transitions) {
	var name string
	switch {
	case t.PlayNeedsInputSound:
		name = e.settings.NeedsInputSound
	case t.PlayIdleSound:
		name = e.settings.IdleSound
	default:
		return
	}
	if name == "" {
		return
	}

	e.bus.Publish(events.SoundRequested{Sound: name})
	if e.player != nil {
		e.player.Play(name)
	}
}
