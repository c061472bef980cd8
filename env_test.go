package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gorpn/internal/logio"
)

type envTestCases []envTestCase

func (etcs envTestCases) run(t *testing.T) {
	{
		var exclusive []envTestCase
		for _, etc := range etcs {
			if etc.exclusive {
				exclusive = append(exclusive, etc)
			}
		}
		if len(exclusive) > 0 {
			etcs = exclusive
		}
	}
	for _, etc := range etcs {
		t.Run(etc.name, etc.run)
	}
}

func envTest(name string) (etc envTestCase) {
	etc.name = name
	return etc
}

type envTestCase struct {
	name    string
	opts    []EnvOption
	stack   []Value
	input   [][]string
	ops     []func(env *Env) error
	expect  []func(t *testing.T, env *Env)
	timeout time.Duration
	wantErr error

	exclusive bool
}

func (etc envTestCase) exclusiveTest() envTestCase {
	etc.exclusive = true
	return etc
}

func (etc envTestCase) withOptions(opts ...EnvOption) envTestCase {
	etc.opts = append(etc.opts, opts...)
	return etc
}

func (etc envTestCase) withStack(values ...Value) envTestCase {
	etc.stack = append(etc.stack, values...)
	return etc
}

func (etc envTestCase) withBinding(name string, val Value) envTestCase {
	etc.opts = append(etc.opts, WithBinding(name, val))
	return etc
}

// withInput adds an input unit, split on whitespace; each unit is run with
// Run, the first error ending the test run.
func (etc envTestCase) withInput(src string) envTestCase {
	etc.input = append(etc.input, strings.Fields(src))
	return etc
}

func (etc envTestCase) do(ops ...func(env *Env) error) envTestCase {
	etc.ops = append(etc.ops, ops...)
	return etc
}

func (etc envTestCase) withTimeout(timeout time.Duration) envTestCase {
	etc.timeout = timeout
	return etc
}

func (etc envTestCase) expectError(err error) envTestCase {
	etc.wantErr = err
	return etc
}

func (etc envTestCase) expectStack(values ...Value) envTestCase {
	etc.expect = append(etc.expect, func(t *testing.T, env *Env) {
		if len(values) == 0 {
			assert.Empty(t, env.stack, "expected empty stack")
		} else {
			assert.Equal(t, values, env.Stack(), "expected stack values")
		}
	})
	return etc
}

func (etc envTestCase) expectBinding(name string, val Value) envTestCase {
	etc.expect = append(etc.expect, func(t *testing.T, env *Env) {
		got, defined := env.Lookup(name)
		if assert.True(t, defined, "expected %q to be bound", name) {
			assert.Equal(t, val, got, "expected %q binding", name)
		}
	})
	return etc
}

func (etc envTestCase) expectCaptureDepth(depth int) envTestCase {
	etc.expect = append(etc.expect, func(t *testing.T, env *Env) {
		assert.Equal(t, depth, env.capture.depth(), "expected capture depth")
	})
	return etc
}

func (etc envTestCase) expectOutput(output string) envTestCase {
	var out strings.Builder
	etc.opts = append(etc.opts, WithOutput(&out))
	etc.expect = append(etc.expect, func(t *testing.T, env *Env) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return etc
}

func (etc envTestCase) expectThat(check func(t *testing.T, env *Env)) envTestCase {
	etc.expect = append(etc.expect, check)
	return etc
}

func (etc envTestCase) run(t *testing.T) {
	var trace []string
	env := etc.buildEnv(func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	})
	defer func() {
		if t.Failed() {
			for _, line := range trace {
				t.Logf("trace: %v", line)
			}
			lw := logio.Writer{Logf: t.Logf}
			defer lw.Close()
			envDumper{env: env, out: &lw, bindings: true}.dump()
		}
	}()

	const defaultTimeout = time.Second
	timeout := etc.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := etc.runEnv(ctx, env); etc.wantErr != nil {
		assert.True(t, errors.Is(err, etc.wantErr), "expected error: %v\ngot: %+v", etc.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected run error")
	}

	for _, expect := range etc.expect {
		expect(t, env)
	}
}

func (etc envTestCase) buildEnv(logfn func(mess string, args ...interface{})) *Env {
	opts := append([]EnvOption{WithLogf(logfn)}, etc.opts...)
	opts = append(opts, WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
		logfn("out: "+mess, args...)
	}}))
	env := New(opts...)
	env.push(etc.stack...)
	return env
}

func (etc envTestCase) runEnv(ctx context.Context, env *Env) error {
	for _, tokens := range etc.input {
		if err := env.Run(ctx, tokens...); err != nil {
			return err
		}
	}
	env.ctx = ctx
	defer func() { env.ctx = nil }()
	for _, op := range etc.ops {
		if err := op(env); err != nil {
			return err
		}
	}
	return env.Finish()
}
