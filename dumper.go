package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

type envDumper struct {
	env *Env
	out io.Writer

	// bindings also dumps user definitions, natives are never listed
	bindings bool
}

func (dump envDumper) dump() {
	dump.dumpStack()
	if dump.bindings {
		dump.dumpBindings()
	}
}

// dumpStack writes the operand stack bottom to top, like "stack: [1 { 2 }]".
func (dump envDumper) dumpStack() {
	fmt.Fprintf(dump.out, "stack: %v\n", formatStack(dump.env.stack))
}

func (dump envDumper) dumpBindings() {
	names := make([]string, 0, len(dump.env.bindings))
	for name, val := range dump.env.bindings {
		if val.kind != NativeKind {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	fmt.Fprintf(dump.out, "# Bindings\n")
	for _, name := range names {
		fmt.Fprintf(dump.out, "  %-*s %v\n", width, name, dump.env.bindings[name])
	}
}

func formatStack(stack []Value) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		val.format(&sb)
	}
	sb.WriteByte(']')
	return sb.String()
}
