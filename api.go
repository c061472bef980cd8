package main

import (
	"context"
	"io"
)

// New creates a session with the built-in operations bound and an empty
// operand stack.
func New(opts ...EnvOption) *Env {
	env := &Env{bindings: make(map[string]Value)}
	env.bindNatives()
	EnvOptions(defaults, EnvOptions(opts...)).apply(env)
	return env
}

// Exec evaluates tokens against the session. Blocks left open remain open,
// so that a later Exec may continue them; call Finish to end an input unit.
// After an error any open blocks are discarded.
func (env *Env) Exec(ctx context.Context, tokens ...string) error {
	defer func(prior context.Context) { env.ctx = prior }(env.ctx)
	env.ctx = ctx

	for _, token := range tokens {
		if err := ctx.Err(); err != nil {
			env.capture.reset()
			return err
		}
		if err := env.EvalToken(token); err != nil {
			env.capture.reset()
			return err
		}
	}
	return nil
}

// Finish ends an input unit: any block still open is an error, and buffered
// output is flushed.
func (env *Env) Finish() (err error) {
	if env.capture.depth() > 0 {
		env.capture.reset()
		err = ErrUnterminatedBlock
	}
	if ferr := env.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Run evaluates tokens as one complete input unit.
func (env *Env) Run(ctx context.Context, tokens ...string) error {
	err := env.Exec(ctx, tokens...)
	if ferr := env.Finish(); err == nil {
		err = ferr
	}
	return err
}

// Stack returns a copy of the operand stack, top of stack last.
func (env *Env) Stack() []Value {
	return append([]Value(nil), env.stack...)
}

// Lookup returns the value bound to name, if any.
func (env *Env) Lookup(name string) (Value, bool) {
	val, defined := env.bindings[name]
	return val, defined
}

// Define binds name to val, replacing any prior binding.
func (env *Env) Define(name string, val Value) {
	env.bindings[name] = val
}

func WithOutput(w io.Writer) EnvOption             { return withOutput(w) }
func WithTee(w io.Writer) EnvOption                { return withTee(w) }
func WithDepthLimit(limit int) EnvOption           { return withDepthLimit(limit) }
func WithBinding(name string, val Value) EnvOption { return withBinding(name, val) }

func WithLogf(logfn func(mess string, args ...interface{})) EnvOption { return withLogfn(logfn) }
