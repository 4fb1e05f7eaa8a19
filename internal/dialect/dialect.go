package dialect

import "fmt"

// Kind identifies one optional syntax extension.
type Kind uint8

const (
	Unknown Kind = iota
	JSX
	TypeAnno
	Decorators
	Pipeline

	kindCount
)

func (k Kind) String() string {
	switch k {
	case JSX:
		return "jsx"
	case TypeAnno:
		return "typeanno"
	case Decorators:
		return "decorators"
	case Pipeline:
		return "pipeline"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("Kind(%s)", k.String())
}

// Parse resolves a dialect identifier; ok=false for unknown names.
func Parse(name string) (Kind, bool) {
	switch name {
	case "jsx":
		return JSX, true
	case "typeanno":
		return TypeAnno, true
	case "decorators":
		return Decorators, true
	case "pipeline":
		return Pipeline, true
	default:
		return Unknown, false
	}
}

// All returns every known dialect in declaration order.
func All() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := JSX; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
