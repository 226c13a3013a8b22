package diag

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	rec.Errorf("width %.2f too small", 0.1)
	rec.Warnf("check %s", "spacing")

	assert.Equal(t, []string{"width 0.10 too small"}, rec.Errors)
	assert.Equal(t, []string{"check spacing"}, rec.Warnings)
}

func TestOrDefault(t *testing.T) {
	rec := &Recorder{}
	assert.Same(t, Sink(rec), OrDefault(rec))
	assert.Equal(t, Default(), OrDefault(nil))
}

func TestDiscard(t *testing.T) {
	// Must not panic or emit.
	Discard.Errorf("ignored %d", 1)
	Discard.Warnf("ignored")
}

func TestLogrusSink(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	s := NewLogrusSink(log)
	s.Errorf("plate %s undersized", "P1")
	assert.Contains(t, buf.String(), "plate P1 undersized")
	assert.Contains(t, buf.String(), "error")
}
