package common

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/freakmaxi/kertish-slicer/basics/terminal"
	"github.com/stretchr/testify/assert"
)

func TestAnimation_Stop(t *testing.T) {
	buffer := &bytes.Buffer{}

	anim := NewAnimation(terminal.NewOutput(buffer, strings.NewReader("")), "processing...")
	anim.Start()
	time.Sleep(time.Millisecond * 250)
	anim.Stop()

	assert.True(t, strings.HasPrefix(buffer.String(), "processing... |"))
	assert.True(t, strings.HasSuffix(buffer.String(), "ok.\n"))
}

func TestAnimation_Cancel(t *testing.T) {
	buffer := &bytes.Buffer{}

	anim := NewAnimation(terminal.NewOutput(buffer, strings.NewReader("")), "processing...")
	anim.Start()
	anim.Cancel()

	assert.True(t, strings.HasSuffix(buffer.String(), "failed.\n"))
}
