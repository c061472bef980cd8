package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/panicerr"
)

func Test_errorReporter(t *testing.T) {
	var (
		out strings.Builder
		log logio.Logger
	)
	log.SetOutput(&out)
	report := errorReporter(&log)

	report(nil)
	assert.Equal(t, "", out.String())
	assert.Equal(t, 0, log.ExitCode())

	report(errors.New("main.rpn:2: +: stack underflow"))
	assert.Equal(t, "ERROR: main.rpn:2: +: stack underflow\n", out.String())
	assert.Equal(t, 1, log.ExitCode())

	out.Reset()
	report(panicerr.Recover("main.rpn", func() error { panic("boom") }))
	assert.True(t,
		strings.HasPrefix(out.String(), "ERROR: main.rpn panicked: boom\npanic stack: "),
		"expected a panic with its stack, got: %q", out.String())
}
