package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/curio/internal/factory"
	"github.com/mesh-intelligence/curio/internal/logging"
	"github.com/mesh-intelligence/curio/internal/metrics"
	"github.com/mesh-intelligence/curio/internal/store"
	"github.com/mesh-intelligence/curio/pkg/types"
)

type handler func(cmd Command) error

// Summary counts the outcome of a Run.
type Summary struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// Processor applies commands to an inventory and registry, writing any
// display output to out.
type Processor struct {
	factory   *factory.Factory
	inventory *store.Inventory
	registry  *store.Registry
	out       io.Writer
	logger    *zap.Logger
	metrics   *metrics.Collector

	handlers map[byte]handler
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used to report failed commands.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) { p.logger = logging.OrNop(l) }
}

// WithMetrics sets the collector that counts executed commands.
func WithMetrics(m *metrics.Collector) Option {
	return func(p *Processor) { p.metrics = m }
}

// NewProcessor returns a processor over the given stores.
func NewProcessor(f *factory.Factory, inv *store.Inventory, reg *store.Registry, out io.Writer, opts ...Option) *Processor {
	p := &Processor{
		factory:   f,
		inventory: inv,
		registry:  reg,
		out:       out,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.handlers = map[byte]handler{
		TagBuy:      p.buy,
		TagSell:     p.sell,
		TagDisplay:  p.display,
		TagCustomer: p.customer,
		TagHistory:  p.history,
	}
	return p
}

// Execute parses and applies one command record.
func (p *Processor) Execute(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd, err := Parse(line)
	if err != nil {
		p.metrics.RecordCommand("invalid", metrics.ResultFailed)
		return err
	}
	h, ok := p.handlers[cmd.Tag]
	if !ok {
		p.metrics.RecordCommand("unknown", metrics.ResultFailed)
		return fmt.Errorf("%w: %q", types.ErrUnknownCommand, cmd.Tag)
	}
	if err := h(cmd); err != nil {
		p.metrics.RecordCommand(string(cmd.Tag), metrics.ResultFailed)
		return err
	}
	p.metrics.RecordCommand(string(cmd.Tag), metrics.ResultOK)
	return nil
}

// Run executes every line in order. A failed command is logged and skipped;
// Run only stops early when ctx is cancelled.
func (p *Processor) Run(ctx context.Context, lines []string) (Summary, error) {
	var sum Summary
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Processed++
		if err := p.Execute(ctx, line); err != nil {
			sum.Failed++
			p.logger.Warn("command failed",
				zap.Int("line", i+1),
				zap.String("command", line),
				zap.Error(err))
		}
	}
	return sum, nil
}

func (p *Processor) buy(cmd Command) error {
	return p.transact(cmd, 1, types.Bought)
}

func (p *Processor) sell(cmd Command) error {
	return p.transact(cmd, -1, types.Sold)
}

// transact moves one unit of stock and logs it against the customer. The
// stock change is undone if the log update fails.
func (p *Processor) transact(cmd Command, delta int, dir types.Direction) error {
	lookup, err := p.factory.Create(cmd.Item)
	if err != nil {
		return err
	}
	item, err := p.inventory.UpdateInventory(lookup, delta)
	if err != nil {
		return fmt.Errorf("%s %s: %w", dir, lookup.Kind, err)
	}
	if err := p.registry.UpdateLog(item, cmd.CustomerID, dir); err != nil {
		if _, rbErr := p.inventory.UpdateInventory(lookup, -delta); rbErr != nil {
			err = errors.Join(err, fmt.Errorf("roll back stock: %w", rbErr))
		}
		return fmt.Errorf("%s %s: %w", dir, lookup.Kind, err)
	}
	return nil
}

func (p *Processor) display(Command) error {
	if _, err := fmt.Fprintln(p.out, "Current inventory:"); err != nil {
		return err
	}
	return p.inventory.OutputAll(p.out)
}

func (p *Processor) customer(cmd Command) error {
	return p.registry.OutputLog(p.out, cmd.CustomerID)
}

func (p *Processor) history(Command) error {
	return p.registry.OutputAll(p.out)
}
