package generator

import (
	"math"
	"strconv"
	"strings"
)

// Kind enumerates the closed set of literal variants a parameter value can
// take in generated text
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindNone
)

// Value is a primitive argument value with a defined Python literal
// rendering per variant
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	flag bool
}

func String(v string) Value { return Value{kind: KindString, str: v} }
func Int(v int64) Value     { return Value{kind: KindInt, num: v} }
func Float(v float64) Value { return Value{kind: KindFloat, flt: v} }
func Bool(v bool) Value     { return Value{kind: KindBool, flag: v} }
func None() Value           { return Value{kind: KindNone} }

func (v Value) Kind() Kind { return v.kind }

// Render produces the Python literal for the value
func (v Value) Render() string {
	switch v.kind {
	case KindString:
		return quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return renderFloat(v.flt)
	case KindBool:
		if v.flag {
			return "True"
		}
		return "False"
	default:
		return "None"
	}
}

// quote renders a single-quoted Python string literal
func quote(s string) string {
	builder := &strings.Builder{}
	builder.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			builder.WriteString(`\\`)
		case '\'':
			builder.WriteString(`\'`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			builder.WriteRune(r)
		}
	}
	builder.WriteByte('\'')
	return builder.String()
}

// renderFloat keeps the literal a Python float: integral values gain a
// trailing ".0" and non-finite values use the float() constructor
func renderFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "float('inf')"
	}
	if math.IsInf(f, -1) {
		return "float('-inf')"
	}
	if math.IsNaN(f) {
		return "float('nan')"
	}
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return text
}
