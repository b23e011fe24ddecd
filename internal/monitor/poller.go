package monitor

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rileyhilliard/sitemon/internal/logger"
)

// Poller defaults.
const (
	DefaultInterval = 5 * time.Second
	DefaultTimeout  = 3 * time.Second
)

// PollerConfig configures a Poller. Zero values fall back to the defaults.
type PollerConfig struct {
	Interval time.Duration
	Timeout  time.Duration
	Logger   logger.Logger
}

// Poller probes every site in a Registry on a fixed period and pushes each
// outcome as soon as its probe resolves.
//
// Rounds run at a fixed rate: the first starts immediately and each later one
// starts Interval after the previous one started. Every site is probed in its
// own goroutine with its own timeout, so a slow site never delays another.
// A site whose previous probe is still running is skipped for that round,
// which keeps pushes for one site in completion order.
type Poller struct {
	registry  *Registry
	prober    Prober
	addresses []string
	inFlight  []atomic.Bool
	interval  time.Duration
	timeout   time.Duration
	log       logger.Logger
}

// NewPoller creates a poller over registry.
func NewPoller(registry *Registry, prober Prober, cfg PollerConfig) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Noop()
	}

	// Names and addresses are immutable, so they are read once here instead
	// of under the registry lock on every round.
	snaps := registry.SnapshotAll()
	addresses := make([]string, len(snaps))
	for i, s := range snaps {
		addresses[i] = s.Address
	}

	return &Poller{
		registry:  registry,
		prober:    prober,
		addresses: addresses,
		inFlight:  make([]atomic.Bool, len(addresses)),
		interval:  cfg.Interval,
		timeout:   cfg.Timeout,
		log:       cfg.Logger,
	}
}

// Interval returns the round period.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Run polls until ctx is cancelled. Probes still in flight at that point are
// abandoned and their outcomes are not recorded.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.dispatch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.dispatch(ctx)
		}
	}
}

// RunRound dispatches one round and waits for every probe in it to resolve.
func (p *Poller) RunRound(ctx context.Context) {
	p.dispatch(ctx).Wait()
}

// dispatch starts one probe per idle site and returns a WaitGroup covering them.
func (p *Poller) dispatch(ctx context.Context) *sync.WaitGroup {
	var wg sync.WaitGroup
	for i := range p.addresses {
		if !p.inFlight[i].CompareAndSwap(false, true) {
			p.log.Debug("skipping %s: previous probe still running", p.addresses[i])
			continue
		}

		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer p.inFlight[index].Store(false)

			outcome := p.probe(ctx, p.addresses[index])
			if ctx.Err() != nil {
				return
			}
			p.registry.Push(index, outcome)
		}(i)
	}
	return &wg
}

// probe runs one bounded probe, converting a panic into Failure.
func (p *Poller) probe(ctx context.Context, address string) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			p.log.Error("probe panic for %s (correlation_id: %s): %v\n%s", address, correlationID, r, debug.Stack())
			outcome = Failure()
		}
	}()

	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.prober.Probe(probeCtx, address)
}
