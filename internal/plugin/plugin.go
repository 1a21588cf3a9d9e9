// Package plugin defines the conversion plugin interface and the manager
// that runs plugins around the render pipeline. Plugins are compiled in;
// there is no dynamic loading.
package plugin

import (
	"fmt"
	"log/slog"
)

// Plugin transforms source text before parsing and rendered text after.
// Both hooks must tolerate arbitrary input; a failing hook is skipped for
// that conversion, never fatal.
type Plugin interface {
	Name() string
	Version() string
	Description() string
	Preprocess(code string) (string, error)
	Postprocess(code string) (string, error)
}

// Manager holds registered plugins in registration order and tracks which
// are enabled.
type Manager struct {
	plugins []Plugin
	enabled map[string]bool
	log     *slog.Logger
}

// NewManager builds an empty manager. A nil logger falls back to
// slog.Default().
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		enabled: make(map[string]bool),
		log:     log,
	}
}

// Register adds a plugin, enabled. Registering a name twice replaces the
// earlier plugin in place and logs a warning.
func (m *Manager) Register(p Plugin) {
	for i, existing := range m.plugins {
		if existing.Name() == p.Name() {
			m.log.Warn("plugin already registered, replacing", "name", p.Name())
			m.plugins[i] = p
			m.enabled[p.Name()] = true
			return
		}
	}
	m.plugins = append(m.plugins, p)
	m.enabled[p.Name()] = true
}

// Enable marks a registered plugin active. Unknown names return an error.
func (m *Manager) Enable(name string) error {
	if m.find(name) == nil {
		return fmt.Errorf("unknown plugin: %s", name)
	}
	m.enabled[name] = true
	return nil
}

// Disable marks a registered plugin inactive. Unknown names return an error.
func (m *Manager) Disable(name string) error {
	if m.find(name) == nil {
		return fmt.Errorf("unknown plugin: %s", name)
	}
	m.enabled[name] = false
	return nil
}

func (m *Manager) find(name string) Plugin {
	for _, p := range m.plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Enabled reports whether a plugin is registered and active.
func (m *Manager) Enabled(name string) bool {
	return m.enabled[name]
}

// Names lists registered plugins in registration order.
func (m *Manager) Names() []string {
	names := make([]string, len(m.plugins))
	for i, p := range m.plugins {
		names[i] = p.Name()
	}
	return names
}

// PreprocessAll runs every enabled plugin's Preprocess in registration
// order. A plugin that fails is skipped; its error is returned alongside
// the result so the caller can surface it as a warning.
func (m *Manager) PreprocessAll(code string) (string, []error) {
	var errs []error
	for _, p := range m.plugins {
		if !m.enabled[p.Name()] {
			continue
		}
		out, err := p.Preprocess(code)
		if err != nil {
			m.log.Warn("plugin preprocess failed", "name", p.Name(), "error", err)
			errs = append(errs, fmt.Errorf("plugin %s: preprocess: %w", p.Name(), err))
			continue
		}
		code = out
	}
	return code, errs
}

// PostprocessAll runs every enabled plugin's Postprocess in registration
// order, with the same fault isolation as PreprocessAll.
func (m *Manager) PostprocessAll(code string) (string, []error) {
	var errs []error
	for _, p := range m.plugins {
		if !m.enabled[p.Name()] {
			continue
		}
		out, err := p.Postprocess(code)
		if err != nil {
			m.log.Warn("plugin postprocess failed", "name", p.Name(), "error", err)
			errs = append(errs, fmt.Errorf("plugin %s: postprocess: %w", p.Name(), err))
			continue
		}
		code = out
	}
	return code, errs
}
