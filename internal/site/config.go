package site

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/chiclang/chicweb/pkg/httpserver"
	"github.com/chiclang/chicweb/pkg/locale"
	"github.com/chiclang/chicweb/pkg/redis"
	"github.com/chiclang/chicweb/pkg/storage"
)

// Content store backends.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Page cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

var (
	ErrInvalidConfig = errors.New("invalid site configuration")
	ErrUnknownKind   = errors.New("unknown content kind")
)

// Config is the full runtime configuration, loaded with config.Load.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	AppName  string `env:"APP_NAME" envDefault:"chicweb"`
	LogLevel string `env:"LOG_LEVEL"`

	SiteURL   string `env:"SITE_URL" envDefault:"http://localhost:8080"`
	SiteTitle string `env:"SITE_TITLE" envDefault:"Chic"`

	Locales       []string `env:"LOCALES" envSeparator:","`
	DefaultLocale string   `env:"DEFAULT_LOCALE" envDefault:"en-US"`

	ContentBackend   string        `env:"CONTENT_BACKEND" envDefault:"local"`
	ContentDir       string        `env:"CONTENT_DIR" envDefault:"content"`
	StaticDir        string        `env:"STATIC_DIR"`
	ContentCache     string        `env:"CONTENT_CACHE" envDefault:"memory"`
	ContentCacheSize int           `env:"CONTENT_CACHE_SIZE" envDefault:"1024"`
	ContentCacheTTL  time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"10m"`
	ContentWatch     bool          `env:"CONTENT_WATCH" envDefault:"false"`
	ListConcurrency  int           `env:"LIST_CONCURRENCY" envDefault:"8"`

	HTTP  httpserver.Config
	S3    storage.S3Config
	Redis redis.Config
}

// SupportedLocales returns LOCALES, or the built-in set when it is empty.
func (c Config) SupportedLocales() []string {
	if len(c.Locales) == 0 {
		return slices.Clone(locale.BuiltinLocales)
	}
	out := make([]string, 0, len(c.Locales))
	for _, l := range c.Locales {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Validate checks the fields the env tags cannot.
func (c Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("SITE_URL %q must be an absolute URL", c.SiteURL))
	}
	switch c.ContentBackend {
	case BackendLocal:
		if c.ContentDir == "" {
			errs = append(errs, errors.New("CONTENT_DIR is required for the local backend"))
		}
	case BackendS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CONTENT_BACKEND %q", c.ContentBackend))
	}
	switch c.ContentCache {
	case CacheNone, CacheRedis:
	case CacheMemory:
		if c.ContentCacheSize <= 0 {
			errs = append(errs, errors.New("CONTENT_CACHE_SIZE must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CONTENT_CACHE %q", c.ContentCache))
	}
	if c.ListConcurrency <= 0 {
		errs = append(errs, errors.New("LIST_CONCURRENCY must be positive"))
	}
	// Locale routes only match the xx-XX shape.
	for _, l := range c.SupportedLocales() {
		if !locale.LooksLikeLocale(l) {
			errs = append(errs, fmt.Errorf("LOCALES entry %q must have the form xx-XX", l))
		}
	}
	if _, err := locale.New(c.SupportedLocales(), c.DefaultLocale); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// Registry builds the locale registry from LOCALES and DEFAULT_LOCALE.
func (c Config) Registry() (*locale.Registry, error) {
	return locale.New(c.SupportedLocales(), c.DefaultLocale)
}

// AbsoluteURL joins SITE_URL and a site path.
func (c Config) AbsoluteURL(path string) string {
	return strings.TrimRight(c.SiteURL, "/") + path
}
