// Package plugin adapts host notifications into published messages. Every
// entry point filters, builds the message and schedules its dispatch, then
// returns without waiting on the broker.
package plugin

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/marko911/geyser-pulse/internal/config"
	"github.com/marko911/geyser-pulse/internal/dispatch"
	"github.com/marko911/geyser-pulse/internal/host"
	"github.com/marko911/geyser-pulse/internal/selector"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

const Name = "GeyserPluginPulse"

// ErrAlreadyStarted is returned by Start on a running plugin.
var ErrAlreadyStarted = errors.New("geyser plugin already started")

// Plugin is one loaded instance. The zero value is not usable; call New.
type Plugin struct {
	mu    sync.RWMutex
	inner *inner

	registry prometheus.Registerer
	metrics  *dispatch.Metrics
	logger   *slog.Logger
}

// inner is the state created by a successful load.
type inner struct {
	runtime      *dispatch.Runtime
	sender       *dispatch.Sender
	metrics      *dispatch.Metrics
	accounts     *selector.AccountSelector
	transactions *selector.TransactionSelector
	logger       *slog.Logger
}

type Option func(*Plugin)

// WithRegistry registers the dispatch metrics with reg instead of the
// default registerer.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(p *Plugin) { p.registry = reg }
}

func New(logger *slog.Logger, opts ...Option) *Plugin {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Plugin{logger: logger.With("component", "plugin")}
	for _, opt := range opts {
		opt(p)
	}
	// Collectors outlive a single load so a reload does not register twice.
	p.metrics = dispatch.NewMetrics(p.registry)
	return p
}

func (p *Plugin) Name() string { return Name }

// OnLoad reads the config file at path, connects the configured broker and
// starts the dispatch runtime.
func (p *Plugin) OnLoad(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return host.NewError(host.KindConfigFile, err)
	}
	parts, err := cfg.IntoParts()
	if err != nil {
		return host.NewError(host.KindConfigFile, err)
	}

	producer, err := openProducer(ctx, parts, p.logger)
	if err != nil {
		return host.NewError(host.KindCustom, err)
	}

	if err := p.Start(parts, producer); err != nil {
		producer.Close()
		return err
	}
	return nil
}

// Start runs the plugin on an already connected producer. The producer is
// closed by OnUnload.
func (p *Plugin) Start(parts *config.Parts, producer dispatch.Producer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inner != nil {
		return host.NewError(host.KindCustom, ErrAlreadyStarted)
	}

	metrics := p.metrics
	runtime, err := dispatch.NewRuntime(parts.Runtime, metrics, p.logger)
	if err != nil {
		return host.NewError(host.KindCustom, err)
	}

	p.inner = &inner{
		runtime:      runtime,
		sender:       dispatch.NewSender(producer, parts.Topics, parts.Serializer, metrics, p.logger),
		metrics:      metrics,
		accounts:     parts.Accounts,
		transactions: parts.Transactions,
		logger:       p.logger,
	}

	p.logger.Info("plugin started",
		"workers", parts.Runtime.Workers,
		"transactions_enabled", !parts.Transactions.IsEmpty(),
	)
	return nil
}

// OnUnload drains scheduled dispatch units until ctx expires, then closes
// the producer.
func (p *Plugin) OnUnload(ctx context.Context) error {
	p.mu.Lock()
	in := p.inner
	p.inner = nil
	p.mu.Unlock()

	if in == nil {
		return nil
	}

	err := in.runtime.Shutdown(ctx)
	in.sender.Close()
	p.logger.Info("plugin unloaded")
	return err
}

// AccountDataNotificationsEnabled is always true; account filtering happens
// per update.
func (p *Plugin) AccountDataNotificationsEnabled() bool {
	return true
}

// TransactionNotificationsEnabled reports false until the plugin is loaded
// and whenever the program allowlist is empty.
func (p *Plugin) TransactionNotificationsEnabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.inner != nil && !p.inner.transactions.IsEmpty()
}

// with runs f on the loaded state, or fails with kind before loading.
func (p *Plugin) with(kind host.ErrorKind, f func(*inner) error) error {
	p.mu.RLock()
	in := p.inner
	p.mu.RUnlock()

	if in == nil {
		return host.NewError(kind, host.ErrNotInitialized)
	}
	if err := f(in); err != nil {
		var perr *host.PluginError
		if errors.As(err, &perr) {
			return perr
		}
		return host.NewError(kind, err)
	}
	return nil
}

// spawn schedules one dispatch unit for msg. A unit the runtime cannot take
// is dropped and counted there.
func (in *inner) spawn(msg geyser.Message) {
	in.metrics.RecordSelected(msg.Exchange().String())
	err := in.runtime.Spawn(func(ctx context.Context) {
		in.sender.Send(ctx, msg)
	})
	if err != nil {
		in.logger.Debug("dispatch unit not scheduled",
			"exchange", msg.Exchange(),
			"error", err,
		)
	}
}
