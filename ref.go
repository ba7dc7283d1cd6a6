package easel

import "fmt"

// refKind discriminates the three shape-reference forms.
type refKind uint8

const (
	refInvalid refKind = iota
	refID
	refIndex
	refValue
)

// ShapeRef names a shape inside a layer in one of three ways: by its ID
// string, by its position in the sequence, or by the record itself.
//
// Construct references with ByID, ByIndex or ByValue. The zero ShapeRef
// is invalid; operations that require a reference reject it with
// ErrInvalidArgument.
type ShapeRef struct {
	kind  refKind
	id    string
	index int
	shape *Shape
}

// ByID references the first shape whose ID matches id.
func ByID(id string) ShapeRef {
	return ShapeRef{kind: refID, id: id}
}

// ByIndex references the shape at position i in the layer's sequence.
func ByIndex(i int) ShapeRef {
	return ShapeRef{kind: refIndex, index: i}
}

// ByValue references the record itself, matched by pointer identity.
func ByValue(s *Shape) ShapeRef {
	return ShapeRef{kind: refValue, shape: s}
}

// Valid reports whether the reference was built by one of the
// constructors.
func (r ShapeRef) Valid() bool { return r.kind != refInvalid }

// String describes the reference for logs and error messages.
func (r ShapeRef) String() string {
	switch r.kind {
	case refID:
		return fmt.Sprintf("ByID(%q)", r.id)
	case refIndex:
		return fmt.Sprintf("ByIndex(%d)", r.index)
	case refValue:
		if r.shape != nil {
			return fmt.Sprintf("ByValue(%q)", r.shape.ID)
		}
		return "ByValue(nil)"
	default:
		return "ShapeRef(invalid)"
	}
}
