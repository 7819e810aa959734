package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/curio/internal/command"
	"github.com/mesh-intelligence/curio/internal/factory"
	"github.com/mesh-intelligence/curio/internal/loader"
	"github.com/mesh-intelligence/curio/internal/logging"
	"github.com/mesh-intelligence/curio/internal/metrics"
	"github.com/mesh-intelligence/curio/internal/sqlite"
	"github.com/mesh-intelligence/curio/internal/store"
	"github.com/mesh-intelligence/curio/pkg/types"
)

// session is one loaded store plus the logger, metrics and record sources
// that feed it. close must be called when the command is done.
type session struct {
	settings  settings
	logger    *zap.Logger
	metrics   *metrics.Collector
	factory   *factory.Factory
	inventory *store.Inventory
	registry  *store.Registry

	db            *sqlite.DB
	restoreLogger func()
	inventoryLoad loader.Result
	customersLoad loader.Result
}

// openSession resolves settings, installs the logger and loads the
// inventory and customer records.
func openSession(ctx context.Context, flags *rootFlags) (*session, error) {
	s, err := resolveSettings(flags)
	if err != nil {
		return nil, userError("%w", err)
	}

	logger, err := logging.New(s.Logging)
	if err != nil {
		return nil, userError("configure logging: %w", err)
	}

	sess := &session{
		settings:      s,
		logger:        logger,
		metrics:       metrics.NewCollector(),
		factory:       factory.New(),
		inventory:     store.NewInventory(),
		registry:      store.NewRegistry(),
		restoreLogger: zap.ReplaceGlobals(logger),
	}

	if s.Source == types.SourceSQLite {
		db, err := sqlite.Open(s.file(s.SQLitePath))
		if err != nil {
			sess.close()
			return nil, sysError("%w", err)
		}
		sess.db = db
	}

	if err := sess.load(ctx); err != nil {
		sess.close()
		return nil, sysError("%w", err)
	}
	return sess, nil
}

func (s *session) load(ctx context.Context) error {
	opts := []loader.Option{loader.WithLogger(s.logger), loader.WithMetrics(s.metrics)}

	src, err := s.source(sqlite.TableInventory)
	if err != nil {
		return err
	}
	if s.inventoryLoad, err = loader.LoadInventory(ctx, src, s.factory, s.inventory, opts...); err != nil {
		return err
	}

	if src, err = s.source(sqlite.TableCustomers); err != nil {
		return err
	}
	if s.customersLoad, err = loader.LoadCustomers(ctx, src, s.registry, opts...); err != nil {
		return err
	}
	return nil
}

// source returns the configured line source for one record table.
func (s *session) source(table string) (loader.Source, error) {
	if s.db != nil {
		return s.db.Source(table)
	}
	var name string
	switch table {
	case sqlite.TableInventory:
		name = s.settings.InventoryFile
	case sqlite.TableCustomers:
		name = s.settings.CustomersFile
	case sqlite.TableCommands:
		name = s.settings.CommandsFile
	default:
		return nil, fmt.Errorf("%w: %q", sqlite.ErrUnknownTable, table)
	}
	return loader.FileSource{Path: s.settings.file(name)}, nil
}

// close writes the metrics file if configured and releases resources.
func (s *session) close() error {
	var errs []error
	if s.settings.MetricsFile != "" {
		errs = append(errs, s.metrics.WriteTextfile(s.settings.file(s.settings.MetricsFile)))
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	s.inventory.Reset()
	s.registry.Reset()
	_ = s.logger.Sync()
	s.restoreLogger()
	return errors.Join(errs...)
}

// applyCommands runs every command record against the loaded store, writing
// display output to out.
func (s *session) applyCommands(ctx context.Context, out io.Writer) (command.Summary, error) {
	src, err := s.source(sqlite.TableCommands)
	if err != nil {
		return command.Summary{}, err
	}
	lines, err := src.Lines(ctx)
	if err != nil {
		return command.Summary{}, fmt.Errorf("loading %s: %w", loader.FileCommands, err)
	}
	for range lines {
		s.metrics.RecordLoad(loader.FileCommands, metrics.ResultOK)
	}

	proc := command.NewProcessor(s.factory, s.inventory, s.registry, out,
		command.WithLogger(s.logger), command.WithMetrics(s.metrics))
	sum, err := proc.Run(ctx, lines)
	s.logger.Info("commands applied",
		zap.Int("processed", sum.Processed),
		zap.Int("failed", sum.Failed))
	return sum, err
}
