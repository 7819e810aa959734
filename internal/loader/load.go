package loader

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/curio/internal/factory"
	"github.com/mesh-intelligence/curio/internal/logging"
	"github.com/mesh-intelligence/curio/internal/metrics"
	"github.com/mesh-intelligence/curio/internal/store"
	"github.com/mesh-intelligence/curio/pkg/types"
)

// Metric file labels.
const (
	FileInventory = "inventory"
	FileCustomers = "customers"
	FileCommands  = "commands"
)

// Result counts the records of one load.
type Result struct {
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
}

type options struct {
	logger  *zap.Logger
	metrics *metrics.Collector
}

// Option configures a load.
type Option func(*options)

// WithLogger sets the logger that reports skipped records.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the collector that counts loaded and skipped records.
func WithMetrics(m *metrics.Collector) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrNop(o.logger)
	return o
}

// LoadInventory creates a collectible from each line of src and inserts it
// into inv. Records that fail to parse or insert are logged and skipped; only
// a source error stops the load.
func LoadInventory(ctx context.Context, src Source, f *factory.Factory, inv *store.Inventory, opts ...Option) (Result, error) {
	return load(ctx, src, FileInventory, newOptions(opts), func(line string) error {
		c, err := f.Create(line)
		if err != nil {
			return err
		}
		return inv.Insert(c)
	})
}

// LoadCustomers parses each line of src as "<id>, <name>" and adds it to reg.
func LoadCustomers(ctx context.Context, src Source, reg *store.Registry, opts ...Option) (Result, error) {
	return load(ctx, src, FileCustomers, newOptions(opts), func(line string) error {
		c, err := types.ParseCustomer(line)
		if err != nil {
			return err
		}
		return reg.Add(c)
	})
}

func load(ctx context.Context, src Source, file string, o options, apply func(string) error) (Result, error) {
	var res Result
	lines, err := src.Lines(ctx)
	if err != nil {
		return res, fmt.Errorf("loading %s: %w", file, err)
	}
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := apply(line); err != nil {
			res.Skipped++
			o.metrics.RecordLoad(file, metrics.ResultSkipped)
			o.logger.Warn("skipping record",
				zap.String("file", file),
				zap.Int("line", i+1),
				zap.String("record", line),
				zap.Error(err))
			continue
		}
		res.Loaded++
		o.metrics.RecordLoad(file, metrics.ResultOK)
	}
	o.logger.Info("records loaded",
		zap.String("file", file),
		zap.Int("loaded", res.Loaded),
		zap.Int("skipped", res.Skipped))
	return res, nil
}
