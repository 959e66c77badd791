package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"imdbooo/internal/builder"
	"imdbooo/internal/config"
	"imdbooo/internal/crawl"
	"imdbooo/internal/fetch"
	"imdbooo/internal/ident"
	"imdbooo/internal/logging"
	"imdbooo/internal/search"
	"imdbooo/internal/store"
)

// lockWait bounds how long a writing command waits for another process.
var lockWait = 30 * time.Second

type commandContext struct {
	configFlag *string
	output     *outputOptions

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, output *outputOptions) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		output:     output,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// session holds the collaborators of one crawling command.
type session struct {
	store       *store.Store
	coordinator *crawl.Coordinator
	search      *search.Service
	lock        *store.WriterLock
}

func (s *session) close() error {
	err := s.store.Close()
	if s.lock != nil {
		err = errors.Join(err, s.lock.Release())
	}
	return err
}

// withSession opens the store under the writer lock and wires the crawl
// pipeline around it. Logs go to the command's stderr.
func (c *commandContext) withSession(cmd *cobra.Command, fn func(*session) error) (err error) {
	ctx := cmd.Context()
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logOpts := logging.OptionsFromConfig(cfg)
	logOpts.Output = cmd.ErrOrStderr()
	logger, err := logging.New(logOpts)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	client, err := fetch.NewClient(fetch.OptionsFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("init http client: %w", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockWait)
	lock, err := store.AcquireWriterLock(lockCtx, cfg.LockPath())
	cancel()
	if err != nil {
		logging.ErrorWithContext(logger, "database lock unavailable",
			"cli.lock_unavailable",
			logging.String("lock_path", cfg.LockPath()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "wait for the other imdbooo process to finish"),
		)
		return err
	}

	st, err := store.Open(cfg)
	if err != nil {
		_ = lock.Release()
		logging.ErrorWithContext(logger, "open store failed",
			"cli.store_open_failed",
			logging.String("database", cfg.DatabasePath()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check paths.data_dir is writable"),
		)
		return fmt.Errorf("open store: %w", err)
	}

	scheme := ident.NewScheme(cfg.Site)
	coordinator := crawl.New(st, client, builder.New(st, logger), scheme, crawl.Options{
		HopWorkers: cfg.Crawl.HopWorkers,
		Logger:     logger,
	})
	s := &session{
		store:       st,
		coordinator: coordinator,
		search:      search.New(st, client, coordinator, scheme, logger),
		lock:        lock,
	}
	defer func() {
		if closeErr := s.close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(s)
}

// withStore opens the store for read-mostly commands.
func (c *commandContext) withStore(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	return fn(st)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
