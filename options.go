package main

import (
	"io"

	"github.com/jcorbin/gorpn/internal/flushio"
)

// EnvOption configures an Env under construction by New.
type EnvOption interface{ apply(env *Env) }

var defaults = EnvOptions(
	withOutput(io.Discard),
)

// EnvOptions combines any number of options into one, applied in order.
func EnvOptions(opts ...EnvOption) EnvOption {
	var res envOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case envOptions:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type envOptions []EnvOption

func (opts envOptions) apply(env *Env) {
	for _, opt := range opts {
		opt.apply(env)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(env *Env) {
	env.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type depthLimitOption int
type bindingOption struct {
	name string
	val  Value
}

func withOutput(w io.Writer) outputOption          { return outputOption{w} }
func withTee(w io.Writer) teeOption                { return teeOption{w} }
func withDepthLimit(limit int) depthLimitOption    { return depthLimitOption(limit) }
func withBinding(name string, val Value) EnvOption { return bindingOption{name, val} }

func (o outputOption) apply(env *Env) {
	if env.out != nil {
		env.out.Flush()
	}
	env.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(env *Env) {
	env.out = flushio.WriteFlushers(env.out, flushio.NewWriteFlusher(o.Writer))
}

func (lim depthLimitOption) apply(env *Env) {
	env.depthLimit = int(lim)
}

func (b bindingOption) apply(env *Env) {
	env.Define(b.name, b.val)
}
