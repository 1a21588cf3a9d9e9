// Package renderer turns a parsed Python module into Java-styled text.
// One Renderer per conversion; it accumulates output lines, an indent
// counter, the enclosing-class stack, and (in the mapped variant) the set
// of required import declarations.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/py"

	"github.com/btouchard/pythva/internal/config"
	"github.com/btouchard/pythva/internal/converter/mapper"
)

type Renderer struct {
	cfg        *config.Config
	mapped     bool // consult the mapping tables and synthesize imports
	lines      []string
	indent     int
	classStack []string
	imports    map[string]struct{}
}

// New builds a renderer. mapped selects the mapping-augmented variant.
func New(cfg *config.Config, mapped bool) *Renderer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Renderer{
		cfg:     cfg,
		mapped:  mapped,
		imports: make(map[string]struct{}),
	}
}

// Render converts a module to output text. The mapped variant pre-scans the
// tree for collection literals, renders, then merges in the imports derived
// from the rendered text.
func (r *Renderer) Render(mod *ast.Module) string {
	if r.mapped {
		r.collectImports(mod)
	}

	for _, stmt := range mod.Body {
		r.renderStmt(stmt)
	}

	body := strings.Join(r.lines, "\n")

	if r.mapped {
		for _, imp := range mapper.RequiredImports(body) {
			r.imports[imp] = struct{}{}
		}
	}
	if len(r.imports) == 0 {
		return body
	}

	imports := make([]string, 0, len(r.imports))
	for imp := range r.imports {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return strings.Join(imports, "\n") + "\n\n" + body
}

// collectImports walks the whole tree before rendering, noting collection
// literals that will need import declarations.
func (r *Renderer) collectImports(mod *ast.Module) {
	ast.Walk(mod, func(node ast.Ast) bool {
		switch node.(type) {
		case *ast.List:
			r.imports["import java.util.List;"] = struct{}{}
			r.imports["import java.util.ArrayList;"] = struct{}{}
		case *ast.Dict:
			r.imports["import java.util.Map;"] = struct{}{}
			r.imports["import java.util.HashMap;"] = struct{}{}
		}
		return true
	})
}

func (r *Renderer) add(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if strings.TrimSpace(line) == "" {
		r.lines = append(r.lines, "")
		return
	}
	r.lines = append(r.lines, strings.Repeat(r.cfg.Indent(), r.indent)+line)
}

func (r *Renderer) access() string {
	if r.cfg.AddAccessModifiers {
		return "public "
	}
	return ""
}

func (r *Renderer) renderBlock(stmts []ast.Stmt) {
	r.indent++
	for _, stmt := range stmts {
		r.renderStmt(stmt)
	}
	r.indent--
}

func (r *Renderer) renderStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.ClassDef:
		r.renderClassDef(v)

	case *ast.FunctionDef:
		r.renderFunctionDef(v)

	case *ast.Assign:
		r.renderAssign(v)

	case *ast.AugAssign:
		target := r.expr(v.Target)
		r.add("%s = (%s %s %s);", target, target, strOp(v.Op), r.expr(v.Value))

	case *ast.Return:
		if v.Value == nil {
			r.add("return;")
		} else {
			r.add("return %s;", r.expr(v.Value))
		}

	case *ast.If:
		r.add("if (%s) {", r.expr(v.Test))
		r.renderBlock(v.Body)
		r.add("}")
		if len(v.Orelse) > 0 {
			r.add("else {")
			r.renderBlock(v.Orelse)
			r.add("}")
		}

	case *ast.For:
		r.add("for (%s : %s) {", r.expr(v.Target), r.expr(v.Iter))
		r.renderBlock(v.Body)
		r.add("}")

	case *ast.While:
		r.add("while (%s) {", r.expr(v.Test))
		r.renderBlock(v.Body)
		r.add("}")

	case *ast.ExprStmt:
		switch e := v.Value.(type) {
		case *ast.Call:
			r.add("%s;", r.expr(e))
		case *ast.Str:
			// Standalone strings are usually doc text; surface them as output.
			r.add("%s(%s);", r.cfg.PrintFunction, r.expr(e))
		}

	case *ast.Import:
		r.renderImport(v)

	case *ast.ImportFrom:
		r.renderImportFrom(v)

	case *ast.Pass:
		// nothing

	case *ast.Break:
		r.add("break;")

	case *ast.Continue:
		r.add("continue;")

	default:
		r.add("// unsupported statement: %T", stmt)
	}
}

func (r *Renderer) renderClassDef(v *ast.ClassDef) {
	// Only direct-name bases survive into the extends clause.
	var bases []string
	for _, base := range v.Bases {
		if n, ok := base.(*ast.Name); ok {
			bases = append(bases, string(n.Id))
		}
	}
	extends := ""
	if len(bases) > 0 {
		extends = " extends " + strings.Join(bases, ", ")
	}

	r.add("%sclass %s%s {", r.access(), v.Name, extends)
	r.classStack = append(r.classStack, string(v.Name))
	r.renderBlock(v.Body)
	r.classStack = r.classStack[:len(r.classStack)-1]
	r.add("}")
}

func (r *Renderer) renderFunctionDef(v *ast.FunctionDef) {
	name := string(v.Name)
	isCtor := name == "__init__"

	var params []string
	var args []*ast.Arg
	if v.Args != nil {
		args = v.Args.Args
	}
	for _, arg := range args {
		// By convention the instance-self reference has no target-side slot.
		if string(arg.Arg) == "self" {
			continue
		}
		params = append(params, r.guessParamType(arg, isCtor)+" "+string(arg.Arg))
	}
	paramList := strings.Join(params, ", ")

	if isCtor {
		className := "Constructor"
		if len(r.classStack) > 0 {
			className = r.classStack[len(r.classStack)-1]
		}
		r.add("%s%s(%s) {", r.access(), className, paramList)
	} else {
		if r.mapped {
			name = mapper.MapSpecialMethod(name)
		}
		r.add("%s%s %s(%s) {", r.access(), r.returnType(v.Returns), name, paramList)
	}

	r.renderBlock(v.Body)
	r.add("}")
}

// guessParamType picks a parameter type. The mapped variant honors a plain
// name annotation; otherwise a fixed name heuristic applies: constructor
// parameter "name" is a string, short math names are ints, everything else
// is the object placeholder.
func (r *Renderer) guessParamType(arg *ast.Arg, isCtor bool) string {
	if r.mapped && arg.Annotation != nil {
		if n, ok := arg.Annotation.(*ast.Name); ok {
			return mapper.MapType(string(n.Id))
		}
	}
	name := string(arg.Arg)
	if isCtor && name == "name" {
		return r.cfg.StringType
	}
	switch name {
	case "a", "b", "x", "y":
		return r.cfg.IntType
	}
	return r.cfg.DefaultType
}

func (r *Renderer) returnType(returns ast.Expr) string {
	if n, ok := returns.(*ast.Name); ok {
		return mapper.MapType(string(n.Id))
	}
	return r.cfg.DefaultType
}

func (r *Renderer) renderAssign(v *ast.Assign) {
	var names []string
	allNames := true
	for _, target := range v.Targets {
		if n, ok := target.(*ast.Name); ok {
			names = append(names, string(n.Id))
		} else {
			allNames = false
		}
	}
	value := r.expr(v.Value)

	if allNames && len(names) > 0 {
		if len(names) == 1 {
			r.add("%s %s = %s;", r.inferType(v.Value), names[0], value)
			return
		}
		// Chained assignment: declare once, then assign each name. The
		// value text is repeated, so side effects run once per target.
		r.add("%s %s;", r.inferType(v.Value), strings.Join(names, ", "))
		for _, name := range names {
			r.add("%s = %s;", name, value)
		}
		return
	}

	for _, target := range v.Targets {
		r.add("%s = %s;", r.expr(target), value)
	}
}

// inferType looks only at the immediate right-hand-side node.
func (r *Renderer) inferType(value ast.Expr) string {
	if !r.cfg.EnableTypeInference {
		return r.cfg.DefaultType
	}
	switch v := value.(type) {
	case *ast.Num:
		switch v.N.(type) {
		case py.Int:
			return r.cfg.IntType
		case py.Float:
			return r.cfg.FloatType
		}
	case *ast.Str:
		return r.cfg.StringType
	case *ast.NameConstant:
		if v.Value == py.True || v.Value == py.False {
			return r.cfg.BoolType
		}
	case *ast.List:
		return r.cfg.ListType + "<Object>"
	case *ast.Dict:
		return r.cfg.DictType + "<Object, Object>"
	}
	return r.cfg.DefaultType
}

func (r *Renderer) renderImport(v *ast.Import) {
	if !r.mapped {
		return
	}
	for _, alias := range v.Names {
		name := string(alias.Name)
		if strings.HasPrefix(name, "pythva") {
			r.add("import %s.*;", name)
		} else {
			r.add("// import %s (manual conversion required)", name)
		}
	}
}

func (r *Renderer) renderImportFrom(v *ast.ImportFrom) {
	if !r.mapped {
		return
	}
	module := string(v.Module)
	for _, alias := range v.Names {
		switch {
		case module == "typing" && string(alias.Name) == "List":
			r.imports["import java.util.List;"] = struct{}{}
		case module == "typing" && string(alias.Name) == "Dict":
			r.imports["import java.util.Map;"] = struct{}{}
		default:
			r.add("// from %s import %s (manual conversion required)", module, alias.Name)
		}
	}
}
