package runner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Info("ready")
	l.Warnf("retrying %d", 2)
	l.Error("gone")

	out := buf.String()
	assert.Contains(t, out, "[info]: ready")
	assert.Contains(t, out, "[warn]: retrying 2")
	assert.Contains(t, out, "[error]: gone")
}
