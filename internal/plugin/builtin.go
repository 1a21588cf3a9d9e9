package plugin

// noop is the shared base for the shipped plugins. They currently pass
// code through untouched and exist so configurations can name them; real
// transformations slot in behind the same names.
type noop struct {
	name        string
	version     string
	description string
}

func (p noop) Name() string        { return p.name }
func (p noop) Version() string     { return p.version }
func (p noop) Description() string { return p.description }

func (p noop) Preprocess(code string) (string, error)  { return code, nil }
func (p noop) Postprocess(code string) (string, error) { return code, nil }

// Builtins returns the five shipped plugins in their canonical order.
func Builtins() []Plugin {
	return []Plugin{
		noop{"comment_preserver", "1.0.0", "Preserve source comments through conversion"},
		noop{"type_annotation", "1.0.0", "Use type annotations to refine declarations"},
		noop{"string_formatter", "1.0.0", "Normalize string formatting calls"},
		noop{"code_style", "1.0.0", "Apply output code style rules"},
		noop{"import_optimizer", "1.0.0", "Drop unused import declarations"},
	}
}

// RegisterBuiltins registers the shipped plugins on a manager.
func RegisterBuiltins(m *Manager) {
	for _, p := range Builtins() {
		m.Register(p)
	}
}
