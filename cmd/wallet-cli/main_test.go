package main

import (
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestGracefulReadErr(t *testing.T) {
	myassert := assert.New(t)
	myassert.True(gracefulReadErr(io.EOF))
	myassert.True(gracefulReadErr(readline.ErrInterrupt))
	myassert.False(gracefulReadErr(errors.New("input/output error")))
	myassert.False(gracefulReadErr(io.ErrClosedPipe))
}
