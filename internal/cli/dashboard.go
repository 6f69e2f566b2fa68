package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/config"
	"github.com/yildizm/datagov/internal/logger"
	"github.com/yildizm/datagov/internal/monitor"
	"github.com/yildizm/datagov/internal/router"
	"github.com/yildizm/datagov/internal/ui"
)

// activityLimit caps the dashboard's recent activity panel
const activityLimit = 8

// runDashboard runs the TUI with the catalog watcher and metrics server
// beside it. Both stop when the program exits.
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	if err := setupLogging(cfg, config.ExpandPath(cfg.Logging.File)); err != nil {
		return err
	}
	defer FlushLogs()
	log := logger.New("cli")

	metrics := monitor.New()
	var cat *catalog.Catalog
	err := metrics.TrackOperationWithError(monitor.OperationLoad, func() (err error) {
		cat, err = loadCatalog(cfg, log)
		return err
	})
	if err != nil {
		return err
	}
	metrics.SetCatalogSize(cat.Counts())

	// A nil interface, not a typed nil, marks the assistant offline
	var answerer ui.Answerer
	providerName := ""
	if a, err := newAssistant(cfg, metrics); err != nil {
		log.Warn("assistant offline: %v", err)
	} else {
		answerer = a
		providerName = a.Provider()
	}
	defer closeProviders(log)

	model := ui.NewModel(ui.Options{
		Catalog:          cat,
		Answerer:         answerer,
		Provider:         providerName,
		Metrics:          metrics,
		Logger:           logger.New("ui"),
		StartView:        router.View(cfg.UI.StartView),
		SidebarMinimized: cfg.UI.SidebarMinimized,
		User:             cfg.UI.User,
		Role:             cfg.UI.Role,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Catalog.Watch {
		if cfg.Catalog.Path == "" {
			log.Warn("--watch ignored: the built-in catalog has no file to watch")
		} else {
			w := newCatalogWatcher(cfg, log, func(c *catalog.Catalog) {
				program.Send(ui.CatalogReloaded(c))
			})
			g.Go(func() error {
				if err := w.Run(gctx); err != nil {
					log.Error("catalog watcher stopped: %v", err)
					return err
				}
				return nil
			})
		}
	}

	if cfg.Metrics.Addr != "" {
		g.Go(func() error {
			if err := metrics.Serve(gctx, cfg.Metrics.Addr); err != nil {
				log.Error("metrics server stopped: %v", err)
				return err
			}
			return nil
		})
		log.Info("serving metrics on %s", cfg.Metrics.Addr)
	}

	_, runErr := program.Run()
	model.Shutdown()
	cancel()
	groupErr := g.Wait()

	logSessionSummary(log, metrics)

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard failed: %w", runErr)
	}
	if groupErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", groupErr)
	}
	return nil
}

// loadCatalog loads the configured catalog, or the built-in one, and
// attaches the activity log when one is configured
func loadCatalog(cfg *config.Config, log *logger.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.Load(config.ExpandPath(cfg.Catalog.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.InfoWithFields("catalog loaded", []logger.Field{
		logger.F("source", cat.Source),
		logger.Count(len(cat.Objects)),
	})
	return withActivity(cat, cfg, log), nil
}

// newCatalogWatcher watches the same file loadCatalog read. Reloaded
// catalogs get the activity log attached before they reach send.
func newCatalogWatcher(cfg *config.Config, log *logger.Logger, send func(*catalog.Catalog)) *catalog.Watcher {
	return catalog.NewWatcher(config.ExpandPath(cfg.Catalog.Path), func(c *catalog.Catalog) {
		send(withActivity(c, cfg, log))
	})
}

// withActivity swaps in the activity log. A missing or broken log keeps
// the catalog's own activity.
func withActivity(cat *catalog.Catalog, cfg *config.Config, log *logger.Logger) *catalog.Catalog {
	if cfg.Catalog.ActivityLog == "" {
		return cat
	}
	activity, err := catalog.LoadActivity(config.ExpandPath(cfg.Catalog.ActivityLog), activityLimit)
	if err != nil {
		log.Warn("activity log skipped: %v", err)
		return cat
	}
	return cat.WithActivity(activity)
}

// logSessionSummary writes the session's counters to the log
func logSessionSummary(log *logger.Logger, metrics *monitor.Collector) {
	snap, err := metrics.Snapshot()
	if err != nil {
		log.Debug("metrics snapshot failed: %v", err)
		return
	}

	fields := []logger.Field{
		logger.F("navigations", snap.Navigations),
		logger.F("ask_tokens", snap.AskTokens),
	}
	for outcome, n := range snap.Asks {
		fields = append(fields, logger.F("asks_"+outcome, n))
	}
	if render, ok := snap.Operations[monitor.OperationRender]; ok {
		fields = append(fields,
			logger.F("renders", render.Count()),
			logger.Duration(render.AvgTime()),
		)
	}
	log.InfoWithFields("session ended", fields)
}
