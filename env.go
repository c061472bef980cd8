package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jcorbin/gorpn/internal/flushio"
)

// Env is one interpreter session: an operand stack, a flat namespace of
// bindings, and the capture stack of any blocks still being read.
//
// An Env is not safe for concurrent use; independent sessions each get their
// own Env and share nothing.
type Env struct {
	logging
	out flushio.WriteFlusher

	// The operand stack holds every value that operations read and write,
	// top of stack last.
	stack []Value

	// Bindings map names to values for the rest of the session; natives are
	// installed here at construction, and def may overwrite any of them.
	bindings map[string]Value

	capture captureStack

	ctx        context.Context
	depth      int
	depthLimit int
}

func (env *Env) push(vals ...Value) {
	env.stack = append(env.stack, vals...)
}

// need checks that at least n operands are on the stack.
func (env *Env) need(n int) error {
	if len(env.stack) < n {
		return ErrStackUnderflow
	}
	return nil
}

// peek returns the value i places below the top of stack; callers must check
// depth with need first.
func (env *Env) peek(i int) Value {
	return env.stack[len(env.stack)-1-i]
}

func (env *Env) pop() Value {
	i := len(env.stack) - 1
	val := env.stack[i]
	env.stack[i] = Value{}
	env.stack = env.stack[:i]
	return val
}

func (env *Env) drop(n int) {
	i := len(env.stack) - n
	for j := i; j < len(env.stack); j++ {
		env.stack[j] = Value{}
	}
	env.stack = env.stack[:i]
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
