package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jcorbin/gorpn/internal/fileinput"
)

// session drives an Env over scanned input, in one of two modes:
//   - runLines treats every line as an input unit, reporting failures and
//     carrying on with the next line
//   - runStreams treats every queued stream as an input unit, stopping at the
//     first failure
type session struct {
	*Env
	in fileinput.Input

	// dump writes the stack to output after each line in runLines; with
	// dumpBindings it also lists definitions
	dump         bool
	dumpBindings bool

	// timeout bounds the evaluation of each input unit
	timeout time.Duration

	// report is called with each failed line's error in runLines, whose own
	// error return is reserved for input failures
	report func(err error)
}

// inputError locates an evaluation error within its input.
type inputError struct {
	fileinput.Location
	err error
}

func (ie inputError) Error() string { return fmt.Sprintf("%v: %v", ie.Location, ie.err) }
func (ie inputError) Unwrap() error { return ie.err }

func (sess *session) unitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if sess.timeout > 0 {
		return context.WithTimeout(ctx, sess.timeout)
	}
	return context.WithCancel(ctx)
}

func (sess *session) runLines(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ln, err := sess.in.ScanLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if ln.EOS && len(ln.Tokens) == 0 {
			continue
		}

		if err := sess.runLine(ctx, ln); err != nil && sess.report != nil {
			sess.report(err)
		}
		if sess.dump {
			if err := sess.dumpState(); err != nil {
				return err
			}
		}
	}
}

func (sess *session) runLine(ctx context.Context, ln fileinput.Line) error {
	ctx, cancel := sess.unitContext(ctx)
	defer cancel()
	sess.logf("#", "%v", ln)
	if err := sess.Run(ctx, ln.Tokens...); err != nil {
		return inputError{ln.Location, err}
	}
	return nil
}

func (sess *session) runStreams(ctx context.Context) error {
	unitCtx, cancel := sess.unitContext(ctx)
	defer func() { cancel() }()
	for {
		ln, err := sess.in.ScanLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		sess.logf("#", "%v", ln)
		err = sess.Exec(unitCtx, ln.Tokens...)
		if err == nil && ln.EOS {
			err = sess.Finish()
			cancel()
			unitCtx, cancel = sess.unitContext(ctx)
		}
		if err != nil {
			if ferr := sess.Finish(); ferr != nil && ferr != err {
				err = errors.Join(err, ferr)
			}
			return inputError{ln.Location, err}
		}
	}
}

func (sess *session) dumpState() error {
	envDumper{
		env:      sess.Env,
		out:      sess.out,
		bindings: sess.dumpBindings,
	}.dump()
	return sess.out.Flush()
}
