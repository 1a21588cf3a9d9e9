// Package converter wires the conversion pipeline together: plugin
// preprocessing, parsing, rendering, optimization, plugin postprocessing,
// and caching. A Converter is safe for concurrent use; each call builds its
// own render context.
package converter

import (
	"log/slog"
	"time"

	"github.com/btouchard/pythva/internal/cache"
	"github.com/btouchard/pythva/internal/config"
	"github.com/btouchard/pythva/internal/converter/errors"
	"github.com/btouchard/pythva/internal/converter/pyparse"
	"github.com/btouchard/pythva/internal/converter/renderer"
	"github.com/btouchard/pythva/internal/optimize"
	"github.com/btouchard/pythva/internal/plugin"
)

// Options select per-conversion behavior.
type Options struct {
	// Enhanced selects the mapping-augmented renderer variant.
	Enhanced bool
	// Optimize runs the text optimizer over the rendered output.
	Optimize bool
}

// Result is the outcome of one conversion. A parse failure is not an
// error: Output then carries an error comment followed by the original
// source, byte for byte.
type Result struct {
	Output   string
	Errors   []string
	Warnings []string
	CacheHit bool
	Elapsed  time.Duration
}

// Converter converts Python source to Java-styled text. Dependencies are
// passed in explicitly; there is no shared package state.
type Converter struct {
	cfg     *config.Config
	plugins *plugin.Manager
	cache   *cache.Cache
	opt     *optimize.Optimizer
	monitor *Monitor
	log     *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithCache attaches a conversion cache.
func WithCache(c *cache.Cache) Option {
	return func(cv *Converter) { cv.cache = c }
}

// WithPlugins replaces the default plugin manager.
func WithPlugins(m *plugin.Manager) Option {
	return func(cv *Converter) { cv.plugins = m }
}

// WithLogger sets the logger used by the converter and its collaborators.
func WithLogger(log *slog.Logger) Option {
	return func(cv *Converter) { cv.log = log }
}

// New builds a Converter. By default the builtin plugins are registered
// and a cache is attached when the config enables one.
func New(cfg *config.Config, opts ...Option) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	cv := &Converter{
		cfg:     cfg,
		monitor: NewMonitor(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(cv)
	}
	if cv.plugins == nil {
		cv.plugins = plugin.NewManager(cv.log)
		plugin.RegisterBuiltins(cv.plugins)
		// A non-empty enabled list in the config selects exactly those
		// plugins; an empty list leaves every builtin active.
		if len(cfg.Plugins.Enabled) > 0 {
			for _, name := range cv.plugins.Names() {
				cv.plugins.Disable(name)
			}
			for _, name := range cfg.Plugins.Enabled {
				if err := cv.plugins.Enable(name); err != nil {
					cv.log.Warn("configured plugin not registered", "name", name)
				}
			}
		}
	}
	if cv.cache == nil && cfg.CacheEnabled {
		cv.cache = cache.New(cfg.MaxCacheSize)
	}
	cv.opt = optimize.New(cv.log)
	return cv
}

// Config returns the converter's configuration.
func (cv *Converter) Config() *config.Config { return cv.cfg }

// Cache returns the attached cache, or nil when caching is disabled.
func (cv *Converter) Cache() *cache.Cache { return cv.cache }

// Plugins returns the plugin manager.
func (cv *Converter) Plugins() *plugin.Manager { return cv.plugins }

// Monitor returns the performance monitor.
func (cv *Converter) Monitor() *Monitor { return cv.monitor }

// Convert runs the full pipeline on source. It never fails outright: a
// parse failure yields a Result whose Output is an error comment followed
// by the untouched original source.
func (cv *Converter) Convert(source string, opts Options) Result {
	start := time.Now()
	res := Result{}

	if cv.cache != nil {
		if out, ok := cv.cache.Get(source); ok {
			cv.monitor.RecordHit()
			res.Output = out
			res.CacheHit = true
			res.Elapsed = time.Since(start)
			return res
		}
		cv.monitor.RecordMiss()
	}

	rep := errors.NewReporter(cv.log)

	code, errs := cv.plugins.PreprocessAll(source)
	for _, err := range errs {
		rep.Warn(errors.PhasePlugin, "%s", err)
	}

	mod, err := pyparse.Parse(code)
	if err != nil {
		rep.Error(errors.Position{}, errors.PhaseParse, "%s", err)
		res.Errors = rep.Errors()
		res.Warnings = rep.Warnings()
		res.Output = "// syntax error: " + err.Error() + "\n" + source
		cv.monitor.Record(time.Since(start))
		res.Elapsed = time.Since(start)
		return res
	}

	out := renderer.New(cv.cfg, opts.Enhanced).Render(mod)

	if opts.Optimize {
		out = cv.opt.Optimize(out)
	}

	out, errs = cv.plugins.PostprocessAll(out)
	for _, err := range errs {
		rep.Warn(errors.PhasePlugin, "%s", err)
	}

	if cv.cache != nil {
		cv.cache.Put(source, out)
	}

	cv.monitor.Record(time.Since(start))
	res.Output = out
	res.Errors = rep.Errors()
	res.Warnings = rep.Warnings()
	res.Elapsed = time.Since(start)
	return res
}
