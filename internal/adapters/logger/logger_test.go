package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rig/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Info("assembling hero")
	log.Warn("clip missing for slot glide")
	log.Error(zerr.New("no armature found"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "assembling hero")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "clip missing for slot glide")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "no armature found")
}
