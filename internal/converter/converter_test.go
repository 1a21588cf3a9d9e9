package converter

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/btouchard/pythva/internal/config"
	"github.com/btouchard/pythva/internal/plugin"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConvertHelloWorld(t *testing.T) {
	cv := New(config.Default(), WithLogger(quiet()))
	src := `class HelloWorld:
    def __init__(self, name):
        self.name = name

    def greet(self):
        print(f"Hello, {self.name}!")
`
	res := cv.Convert(src, Options{})
	if len(res.Errors) != 0 {
		t.Fatalf("Errors = %v", res.Errors)
	}
	for _, want := range []string{
		"public class HelloWorld {",
		"public HelloWorld(String name) {",
		`System.out.println((("Hello, " + this.name) + "!"));`,
	} {
		if !strings.Contains(res.Output, want) {
			t.Errorf("output missing %q:\n%s", want, res.Output)
		}
	}
}

func TestConvertSyntaxError(t *testing.T) {
	cv := New(config.Default(), WithLogger(quiet()))
	src := "def broken(:\n"
	res := cv.Convert(src, Options{})

	if len(res.Errors) == 0 {
		t.Error("expected recorded error")
	}
	if !strings.HasPrefix(res.Output, "// syntax error: ") {
		t.Errorf("output missing error marker:\n%s", res.Output)
	}
	if !strings.HasSuffix(res.Output, src) {
		t.Errorf("output does not end with the original source:\n%s", res.Output)
	}
}

func TestConvertCaching(t *testing.T) {
	cv := New(config.Default(), WithLogger(quiet()))

	first := cv.Convert("x = 10\n", Options{})
	if first.CacheHit {
		t.Error("first conversion reported a cache hit")
	}
	second := cv.Convert("x = 10\n", Options{})
	if !second.CacheHit {
		t.Error("second conversion missed the cache")
	}
	if first.Output != second.Output {
		t.Errorf("outputs differ: %q vs %q", first.Output, second.Output)
	}

	m := cv.Monitor().Snapshot()
	if m.CacheHits != 1 || m.CacheMisses != 1 {
		t.Errorf("hits/misses = %d/%d", m.CacheHits, m.CacheMisses)
	}
}

func TestConvertCacheDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.CacheEnabled = false
	cv := New(cfg, WithLogger(quiet()))
	if cv.Cache() != nil {
		t.Fatal("cache attached despite config")
	}
	res := cv.Convert("x = 10\n", Options{})
	if res.CacheHit {
		t.Error("cache hit without a cache")
	}
}

func TestConvertEnhanced(t *testing.T) {
	cv := New(config.Default(), WithLogger(quiet()))
	res := cv.Convert("items = [1, 2, 3]\n", Options{Enhanced: true})
	for _, want := range []string{
		"import java.util.List;",
		"import java.util.ArrayList;",
		"List<Object> items = Arrays.asList(1, 2, 3);",
	} {
		if !strings.Contains(res.Output, want) {
			t.Errorf("output missing %q:\n%s", want, res.Output)
		}
	}
}

func TestConvertOptimize(t *testing.T) {
	cv := New(config.Default(), WithLogger(quiet()))

	src := "if x > 10:\n    pass\n"
	plain := cv.Convert(src, Options{})
	if !strings.Contains(plain.Output, "if ((x > 10)) {") {
		t.Fatalf("unexpected baseline output:\n%s", plain.Output)
	}

	cv2 := New(config.Default(), WithLogger(quiet()))
	opt := cv2.Convert(src, Options{Optimize: true})
	if !strings.Contains(opt.Output, "if (x > 10) {") {
		t.Errorf("parentheses not collapsed:\n%s", opt.Output)
	}
}

type failingPlugin struct{}

func (failingPlugin) Name() string        { return "failing" }
func (failingPlugin) Version() string     { return "0.0.1" }
func (failingPlugin) Description() string { return "always fails" }

func (failingPlugin) Preprocess(string) (string, error) {
	return "", errors.New("preprocess boom")
}

func (failingPlugin) Postprocess(string) (string, error) {
	return "", errors.New("postprocess boom")
}

func TestPluginFailureIsWarning(t *testing.T) {
	m := plugin.NewManager(quiet())
	m.Register(failingPlugin{})
	cv := New(config.Default(), WithPlugins(m), WithLogger(quiet()))

	res := cv.Convert("x = 10\n", Options{})
	if len(res.Errors) != 0 {
		t.Errorf("plugin failure surfaced as error: %v", res.Errors)
	}
	if len(res.Warnings) != 2 {
		t.Errorf("Warnings = %v, want preprocess and postprocess entries", res.Warnings)
	}
	if !strings.Contains(res.Output, "int x = 10;") {
		t.Errorf("conversion did not survive plugin failure:\n%s", res.Output)
	}
}

func TestConfiguredPluginSelection(t *testing.T) {
	cfg := config.Default()
	cfg.Plugins.Enabled = []string{"code_style", "no_such_plugin"}
	cv := New(cfg, WithLogger(quiet()))

	if !cv.Plugins().Enabled("code_style") {
		t.Error("configured plugin not enabled")
	}
	for _, name := range []string{"comment_preserver", "type_annotation", "string_formatter", "import_optimizer"} {
		if cv.Plugins().Enabled(name) {
			t.Errorf("plugin %s enabled despite config list", name)
		}
	}

	// An empty list keeps every builtin active.
	cv = New(config.Default(), WithLogger(quiet()))
	for _, name := range cv.Plugins().Names() {
		if !cv.Plugins().Enabled(name) {
			t.Errorf("builtin %s not enabled by default", name)
		}
	}
}

func TestMonitor(t *testing.T) {
	m := NewMonitor()
	m.Record(10 * time.Millisecond)
	m.Record(20 * time.Millisecond)
	m.RecordHit()
	m.RecordMiss()

	s := m.Snapshot()
	if s.Conversions != 2 {
		t.Errorf("Conversions = %d", s.Conversions)
	}
	if s.AverageTime != 15*time.Millisecond {
		t.Errorf("AverageTime = %s", s.AverageTime)
	}
	if s.CacheHits != 1 || s.CacheMisses != 1 {
		t.Errorf("hits/misses = %d/%d", s.CacheHits, s.CacheMisses)
	}

	report := m.Report()
	if !strings.Contains(report, "conversions: 2") {
		t.Errorf("Report = %q", report)
	}

	m.Reset()
	if s := m.Snapshot(); s.Conversions != 0 || s.TotalTime != 0 {
		t.Errorf("Snapshot after Reset = %+v", s)
	}
}
