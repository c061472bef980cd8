package main

import (
	"strconv"
	"strings"
)

// Kind tags the variant carried by a Value.
type Kind uint8

// Value kinds; the zero Kind is invalid so that a zero Value is never mistaken
// for the number 0.
const (
	InvalidKind Kind = iota
	NumberKind
	OperatorKind
	SymbolKind
	BlockKind
	NativeKind
)

var kindNames = [...]string{
	InvalidKind:  "invalid",
	NumberKind:   "number",
	OperatorKind: "operator",
	SymbolKind:   "symbol",
	BlockKind:    "block",
	NativeKind:   "native",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a runtime value: a number, an unresolved operator name, a quoted
// symbol, a captured block of values, or a native operation.
//
// Values are small and copied freely; a block's element slice is shared
// between copies, which is safe since blocks are never mutated once closed.
type Value struct {
	kind   Kind
	num    int32
	name   string
	block  []Value
	native Native
}

// Number returns a number value.
func Number(n int32) Value { return Value{kind: NumberKind, num: n} }

// Operator returns an unresolved operator (or variable) name.
func Operator(name string) Value { return Value{kind: OperatorKind, name: name} }

// Symbol returns a quoted symbol, as written "/name" in source.
func Symbol(name string) Value { return Value{kind: SymbolKind, name: name} }

// Block returns a block value capturing the given elements.
func Block(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: BlockKind, block: elems}
}

// NativeValue returns a value that invokes the given native operation.
func NativeValue(op Native) Value { return Value{kind: NativeKind, native: op} }

// Kind returns the value's variant tag.
func (v Value) Kind() Kind { return v.kind }

// AsNumber returns the value's integer, or a type error if it is not a number.
func (v Value) AsNumber() (int32, error) {
	if v.kind != NumberKind {
		return 0, typeError(NumberKind, v.kind)
	}
	return v.num, nil
}

// AsBlock returns the value's elements, or a type error if it is not a block.
func (v Value) AsBlock() ([]Value, error) {
	if v.kind != BlockKind {
		return nil, typeError(BlockKind, v.kind)
	}
	return v.block, nil
}

// AsSymbol returns the symbol's name, or a type error if it is not a symbol.
func (v Value) AsSymbol() (string, error) {
	if v.kind != SymbolKind {
		return "", typeError(SymbolKind, v.kind)
	}
	return v.name, nil
}

// Equal compares values structurally; blocks are equal when their elements
// are, natives when they name the same operation.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NumberKind:
		return v.num == other.num
	case OperatorKind, SymbolKind:
		return v.name == other.name
	case NativeKind:
		return v.native == other.native
	case BlockKind:
		if len(v.block) != len(other.block) {
			return false
		}
		for i := range v.block {
			if !v.block[i].Equal(other.block[i]) {
				return false
			}
		}
		return true
	}
	return true
}

// Display returns the form written by puts: numbers in decimal, names as
// their raw text, and opaque placeholders for blocks and natives.
func (v Value) Display() string {
	switch v.kind {
	case NumberKind:
		return strconv.FormatInt(int64(v.num), 10)
	case OperatorKind, SymbolKind:
		return v.name
	case BlockKind:
		return "<block>"
	case NativeKind:
		return "<native>"
	}
	return "<invalid>"
}

// String returns a source-like form, used in stack dumps and trace logs.
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb)
	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	switch v.kind {
	case NumberKind:
		sb.WriteString(strconv.FormatInt(int64(v.num), 10))
	case OperatorKind:
		sb.WriteString(v.name)
	case SymbolKind:
		sb.WriteByte('/')
		sb.WriteString(v.name)
	case BlockKind:
		sb.WriteByte('{')
		for _, elem := range v.block {
			sb.WriteByte(' ')
			elem.format(sb)
		}
		sb.WriteString(" }")
	case NativeKind:
		sb.WriteString("<native ")
		sb.WriteString(v.native.String())
		sb.WriteByte('>')
	default:
		sb.WriteString("<invalid>")
	}
}
