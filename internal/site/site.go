package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/chiclang/chicweb/pkg/content"
	"github.com/chiclang/chicweb/pkg/handler"
	"github.com/chiclang/chicweb/pkg/httpserver"
	"github.com/chiclang/chicweb/pkg/i18n"
	"github.com/chiclang/chicweb/pkg/locale"
	"github.com/chiclang/chicweb/pkg/logger"
	"github.com/chiclang/chicweb/pkg/redis"
	"github.com/chiclang/chicweb/pkg/storage"
)

// Site owns everything a running content server needs: the content store,
// the page cache, the resolver and the message catalog.
type Site struct {
	cfg      Config
	log      *slog.Logger
	locales  *locale.Registry
	store    storage.Storage
	cache    content.Cache
	resolver *content.Resolver
	catalog  *i18n.Catalog
	errors   handler.ErrorHandler
	redis    goredis.UniversalClient
	watcher  *content.Watcher
}

// Option overrides a dependency New would otherwise build from Config.
type Option func(*Site)

// WithStore uses store instead of the configured backend.
func WithStore(store storage.Storage) Option {
	return func(s *Site) { s.store = store }
}

// WithCache uses cache instead of the configured backend.
func WithCache(cache content.Cache) Option {
	return func(s *Site) { s.cache = cache }
}

// WithRedis uses an existing redis client for the redis cache backend.
func WithRedis(client goredis.UniversalClient) Option {
	return func(s *Site) { s.redis = client }
}

// New validates cfg and wires the site. The docs manifest and message
// overrides are read from the content store once, here.
func New(ctx context.Context, cfg Config, log *slog.Logger, opts ...Option) (*Site, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Site{cfg: cfg, log: log}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.locales, err = cfg.Registry(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if s.store == nil {
		if s.store, err = NewStore(ctx, cfg); err != nil {
			return nil, err
		}
	}
	if s.cache == nil {
		if s.cache, err = s.newCache(ctx); err != nil {
			return nil, err
		}
	}

	docs, err := content.LoadDocsManifest(ctx, s.store)
	if err != nil {
		s.closeRedis()
		return nil, err
	}
	if s.catalog, err = i18n.Load(ctx, s.store, s.locales.DefaultLocale(),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingLogging(),
	); err != nil {
		s.closeRedis()
		return nil, err
	}

	s.resolver = content.NewResolver(s.store, s.locales,
		content.WithDocs(docs),
		content.WithCache(s.cache),
		content.WithConcurrency(cfg.ListConcurrency),
		content.WithLogger(log.With(logger.Component("content"))),
	)
	s.errors = handler.NewErrorHandler(log,
		handler.WithTranslator(s.catalog),
		handler.WithClassifiers(classifyContentError),
	)

	return s, nil
}

// NewStore opens the configured content store.
func NewStore(ctx context.Context, cfg Config) (storage.Storage, error) {
	switch cfg.ContentBackend {
	case BackendS3:
		return storage.NewS3Storage(ctx, cfg.S3)
	case BackendLocal:
		return storage.NewLocalStorage(cfg.ContentDir)
	default:
		return nil, fmt.Errorf("%w: unknown CONTENT_BACKEND %q", ErrInvalidConfig, cfg.ContentBackend)
	}
}

func (s *Site) newCache(ctx context.Context) (content.Cache, error) {
	switch s.cfg.ContentCache {
	case CacheMemory:
		return content.NewMemoryCache(s.cfg.ContentCacheSize, content.WithTTL(s.cfg.ContentCacheTTL)), nil
	case CacheRedis:
		if s.redis == nil {
			client, err := redis.Connect(ctx, s.cfg.Redis)
			if err != nil {
				return nil, err
			}
			s.redis = client
		}
		return content.NewRedisCache(s.redis,
			content.WithRedisTTL(s.cfg.ContentCacheTTL),
			content.WithRedisLogger(s.log.With(logger.Component("cache"))),
		), nil
	default:
		return content.NopCache{}, nil
	}
}

// Start begins watching the content directory when CONTENT_WATCH is set and
// the store is local. Changes purge the page cache.
func (s *Site) Start(ctx context.Context) error {
	if !s.cfg.ContentWatch {
		return nil
	}
	local, ok := s.store.(*storage.LocalStorage)
	if !ok {
		s.log.WarnContext(ctx, "CONTENT_WATCH ignored: store is not local")
		return nil
	}

	s.watcher = content.NewWatcher(local.Root(), s.cache,
		content.WithWatcherLogger(s.log.With(logger.Component("watcher"))),
	)
	return s.watcher.Start(ctx)
}

// Close stops the watcher and releases the redis connection.
func (s *Site) Close() error {
	var errs []error
	if s.watcher != nil {
		errs = append(errs, s.watcher.Stop())
	}
	errs = append(errs, s.closeRedis())
	return errors.Join(errs...)
}

func (s *Site) closeRedis() error {
	if s.redis == nil {
		return nil
	}
	err := s.redis.Close()
	s.redis = nil
	return err
}

// Resolver exposes the content resolver for the CLI.
func (s *Site) Resolver() *content.Resolver { return s.resolver }

// Catalog exposes the message catalog for the CLI.
func (s *Site) Catalog() *i18n.Catalog { return s.catalog }

// Config returns the configuration the site was built with.
func (s *Site) Config() Config { return s.cfg }

// Checks returns the readiness checks for /readyz.
func (s *Site) Checks() []httpserver.Check {
	checks := []httpserver.Check{{Name: "content", Func: s.resolver.Ping}}
	if s.redis != nil {
		checks = append(checks, redis.Healthcheck(s.redis))
	}
	return checks
}

func classifyContentError(err error) (handler.HTTPError, bool) {
	switch {
	case errors.Is(err, content.ErrNotFound), errors.Is(err, content.ErrUnsupportedLocale):
		return handler.ErrNotFound, true
	default:
		return handler.HTTPError{}, false
	}
}
