package main

import (
	"strconv"
)

// token classes that are not values
const (
	openToken  = "{"
	closeToken = "}"
)

// classify turns a scanned token into a value: a number literal, a quoted
// symbol, or an operator name to be resolved at evaluation time.
func classify(token string) (Value, error) {
	if isNumberToken(token) {
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return Value{}, &LiteralError{token, err}
		}
		return Number(int32(n)), nil
	}
	if len(token) > 1 && token[0] == '/' {
		return Symbol(token[1:]), nil
	}
	return Operator(token), nil
}

// isNumberToken matches an optional minus sign followed by one or more ASCII
// digits.
func isNumberToken(token string) bool {
	if len(token) > 0 && token[0] == '-' {
		token = token[1:]
	}
	if len(token) == 0 {
		return false
	}
	for i := 0; i < len(token); i++ {
		if c := token[i]; c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// EvalToken evaluates one scanned token: braces open and close block
// capture, anything else is classified and handed to Eval.
func (env *Env) EvalToken(token string) error {
	switch token {
	case openToken:
		env.capture.open()
		env.logf("{", "open depth:%v", env.capture.depth())
		return nil

	case closeToken:
		block, err := env.capture.close()
		if err != nil {
			return err
		}
		env.logf("}", "close depth:%v %v", env.capture.depth(), block)
		return env.Eval(block)
	}

	val, err := classify(token)
	if err != nil {
		return err
	}
	return env.Eval(val)
}

// Eval decides the fate of a single value: while any block is being captured
// the value is appended to it unexamined; otherwise operator names are
// resolved and executed, and all other values are pushed.
func (env *Env) Eval(val Value) error {
	if env.capture.depth() > 0 {
		env.capture.push(val)
		return nil
	}
	if val.kind == OperatorKind {
		return env.call(val.name)
	}
	env.logf(">", "push %v", val)
	env.push(val)
	return nil
}

// call resolves a name: blocks are inlined into the current environment,
// natives are invoked, and any other bound value is pushed as a variable.
func (env *Env) call(name string) error {
	val, defined := env.bindings[name]
	if !defined {
		return &UndefinedError{name}
	}
	switch val.kind {
	case BlockKind:
		env.logf("@", "call %v %v", name, val)
		return env.evalBlock(val.block)
	case NativeKind:
		env.logf("@", "%v -- %v", name, env.stack)
		if err := val.native.call(env); err != nil {
			return &OpError{name, err}
		}
		return nil
	}
	env.logf(">", "push %v = %v", name, val)
	env.push(val)
	return nil
}

// evalBlock evaluates each element of a block in order, as if its tokens
// appeared in place of the call.
func (env *Env) evalBlock(elems []Value) error {
	if env.depthLimit > 0 && env.depth >= env.depthLimit {
		return ErrDepthExceeded
	}
	env.depth++
	defer func() { env.depth-- }()
	if env.logfn != nil {
		defer env.withLogPrefix("	")()
	}

	for _, elem := range elems {
		if env.ctx != nil {
			if err := env.ctx.Err(); err != nil {
				return err
			}
		}
		if err := env.Eval(elem); err != nil {
			return err
		}
	}
	return nil
}
