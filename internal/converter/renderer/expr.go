package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/py"

	"github.com/btouchard/pythva/internal/converter/mapper"
)

// expr renders a single expression node. Every branch is total: unfamiliar
// nodes degrade to a comment placeholder instead of failing the run.
func (r *Renderer) expr(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Name:
		if string(v.Id) == "self" {
			return "this"
		}
		return string(v.Id)

	case *ast.Str:
		return strconv.Quote(string(v.S))

	case *ast.Num:
		s, _ := py.Str(v.N)
		return string(s.(py.String))

	case *ast.NameConstant:
		switch v.Value {
		case py.None:
			return "null"
		case py.True:
			return "true"
		case py.False:
			return "false"
		default:
			s, _ := py.Str(v.Value)
			return string(s.(py.String))
		}

	case *ast.List:
		if len(v.Elts) == 0 && r.mapped {
			return "new ArrayList<>()"
		}
		return "Arrays.asList(" + r.exprList(v.Elts) + ")"

	case *ast.Tuple:
		return "Arrays.asList(" + r.exprList(v.Elts) + ")"

	case *ast.Dict:
		if len(v.Keys) == 0 && r.mapped {
			return "new HashMap<>()"
		}
		items := make([]string, len(v.Keys))
		for i := range v.Keys {
			items[i] = r.expr(v.Keys[i]) + ", " + r.expr(v.Values[i])
		}
		return "Map.of(" + strings.Join(items, ", ") + ")"

	case *ast.BinOp:
		return fmt.Sprintf("(%s %s %s)", r.expr(v.Left), strOp(v.Op), r.expr(v.Right))

	case *ast.BoolOp:
		parts := make([]string, len(v.Values))
		for i, val := range v.Values {
			parts[i] = r.expr(val)
		}
		return "(" + strings.Join(parts, " "+strBoolOp(v.Op)+" ") + ")"

	case *ast.UnaryOp:
		return strUnary(v.Op) + r.expr(v.Operand)

	case *ast.Compare:
		// Only the first comparator pair renders; the rest of a chain is
		// dropped.
		if len(v.Ops) == 0 || len(v.Comparators) == 0 {
			return r.expr(v.Left)
		}
		return fmt.Sprintf("(%s %s %s)", r.expr(v.Left), strCmpOp(v.Ops[0]), r.expr(v.Comparators[0]))

	case *ast.Call:
		return r.call(v)

	case *ast.Attribute:
		return r.expr(v.Value) + "." + string(v.Attr)

	case *ast.Subscript:
		if idx, ok := v.Slice.(*ast.Index); ok {
			return r.expr(v.Value) + ".get(" + r.expr(idx.Value) + ")"
		}
		return r.fallback(e)

	default:
		return r.fallback(e)
	}
}

func (r *Renderer) exprList(elts []ast.Expr) string {
	parts := make([]string, len(elts))
	for i, e := range elts {
		parts[i] = r.expr(e)
	}
	return strings.Join(parts, ", ")
}

// call renders a call expression. A few builtins get dedicated rewrites;
// in the mapped variant remaining callee names go through the builtin
// table, otherwise they pass through unchanged.
func (r *Renderer) call(v *ast.Call) string {
	callee := r.expr(v.Func)
	args := r.exprList(v.Args)

	switch callee {
	case "print":
		return r.cfg.PrintFunction + "(" + args + ")"
	case "len":
		if len(v.Args) == 1 {
			return r.expr(v.Args[0]) + r.cfg.LenFunction
		}
	case "range":
		switch len(v.Args) {
		case 1:
			return r.cfg.RangeFunction + "(0, " + r.expr(v.Args[0]) + ")"
		case 2:
			return r.cfg.RangeFunction + "(" + args + ")"
		}
	}

	if r.mapped {
		callee = mapper.MapBuiltin(callee)
	}
	return callee + "(" + args + ")"
}

func (r *Renderer) fallback(e ast.Expr) string {
	return fmt.Sprintf("/* unsupported expr: %T */", e)
}

func strOp(op ast.OperatorNumber) string {
	switch op {
	case ast.Add:
		return "+"
	case ast.Sub:
		return "-"
	case ast.Mult:
		return "*"
	case ast.Div:
		return "/"
	case ast.Modulo:
		return "%"
	case ast.Pow:
		return "**"
	case ast.LShift:
		return "<<"
	case ast.RShift:
		return ">>"
	case ast.BitOr:
		return "|"
	case ast.BitXor:
		return "^"
	case ast.BitAnd:
		return "&"
	case ast.FloorDiv:
		return "//"
	}
	return op.String()
}

func strCmpOp(op ast.CmpOp) string {
	switch op {
	case ast.Eq:
		return "=="
	case ast.NotEq:
		return "!="
	case ast.Lt:
		return "<"
	case ast.LtE:
		return "<="
	case ast.Gt:
		return ">"
	case ast.GtE:
		return ">="
	}
	return fmt.Sprintf("%v", op)
}

func strBoolOp(op ast.BoolOpNumber) string {
	switch op {
	case ast.And:
		return "&&"
	case ast.Or:
		return "||"
	}
	return op.String()
}

func strUnary(op ast.UnaryOpNumber) string {
	switch op {
	case ast.Not:
		return "!"
	case ast.UAdd:
		return "+"
	case ast.USub:
		return "-"
	case ast.Invert:
		return "~"
	}
	return op.String()
}
