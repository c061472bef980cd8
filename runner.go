package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/gorpn/internal/fileinput"
	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/panicerr"
)

// runner creates sessions from shared settings, and runs them either
// interactively or as a batch of files.
type runner struct {
	opts    []EnvOption
	logfn   func(mess string, args ...interface{})
	prelude []preludeFile

	dump    bool
	timeout time.Duration
	jobs    int

	// open defaults to os.Open; readers that implement io.Closer are closed
	// once their session finishes
	open func(name string) (io.Reader, error)

	report func(err error)
}

type preludeFile struct {
	name string
	data []byte
}

func (rn *runner) loadPrelude(names ...string) error {
	for _, name := range names {
		r, err := rn.openFile(name)
		if err != nil {
			return err
		}
		data, err := io.ReadAll(r)
		closeReader(r)
		if err != nil {
			return err
		}
		rn.prelude = append(rn.prelude, preludeFile{name, data})
	}
	return nil
}

func (rn *runner) openFile(name string) (io.Reader, error) {
	if rn.open != nil {
		return rn.open(name)
	}
	return os.Open(name)
}

func closeReader(r io.Reader) {
	if cl, ok := r.(io.Closer); ok {
		cl.Close()
	}
}

func (rn *runner) newSession(name string, out io.Writer) *session {
	opts := append([]EnvOption{WithOutput(out)}, rn.opts...)
	if logfn := rn.logfn; logfn != nil {
		if name != "" {
			prefix := name + ": "
			logfn = func(mess string, args ...interface{}) { rn.logfn(prefix+mess, args...) }
		}
		opts = append(opts,
			WithLogf(logfn),
			WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
				logfn("out: "+mess, args...)
			}}),
		)
	}
	sess := &session{
		Env:          New(opts...),
		dumpBindings: rn.logfn != nil,
		timeout:      rn.timeout,
		report:       rn.report,
	}
	for _, pf := range rn.prelude {
		sess.in.Queue = append(sess.in.Queue, fileinput.NamedReader(pf.name, bytes.NewReader(pf.data)))
	}
	return sess
}

// interactive evaluates in line by line in a single session, dumping the
// stack after every line; failed lines are reported and the session goes on.
func (rn *runner) interactive(ctx context.Context, in io.Reader, out io.Writer) error {
	sess := rn.newSession("", out)
	sess.dump = rn.dump
	return panicerr.Recover("interactive", func() error {
		if err := sess.runStreams(ctx); err != nil {
			return err
		}
		sess.in.Queue = append(sess.in.Queue, in)
		return sess.runLines(ctx)
	})
}

// batch evaluates each named file in its own session, up to jobs at a time.
// Output from each file is written to out in argument order, and each failed
// file is reported after its output; only a failure to write output is
// returned.
func (rn *runner) batch(ctx context.Context, names []string, out io.Writer) error {
	outs := make([]bytes.Buffer, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	if rn.jobs > 0 {
		g.SetLimit(rn.jobs)
	}
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			errs[i] = rn.runFile(ctx, name, &outs[i])
			return nil
		})
	}
	g.Wait()

	for i := range names {
		if _, err := outs[i].WriteTo(out); err != nil {
			return err
		}
		if errs[i] != nil && rn.report != nil {
			rn.report(errs[i])
		}
	}
	return nil
}

func (rn *runner) runFile(ctx context.Context, name string, out io.Writer) error {
	r, err := rn.openFile(name)
	if err != nil {
		return err
	}
	defer closeReader(r)
	if _, named := r.(interface{ Name() string }); !named {
		r = fileinput.NamedReader(name, r)
	}

	sess := rn.newSession(name, out)
	sess.in.Queue = append(sess.in.Queue, r)
	err = panicerr.Recover(name, func() error {
		return sess.runStreams(ctx)
	})
	if rn.dump {
		if derr := sess.dumpState(); err == nil {
			err = derr
		}
	}
	return err
}
