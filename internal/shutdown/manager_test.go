package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"refstudio/internal/logger"
)

func TestShutdownRunsStepsInReverseOnce(t *testing.T) {
	m := NewManager(logger.NewNop())
	var order []string
	m.Register("bus", func() { order = append(order, "bus") })
	m.Register("window", func() { order = append(order, "window") })

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"window", "bus"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done not closed")
	}
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.timeout = 20 * time.Millisecond
	release := make(chan struct{})
	defer close(release)
	ran := false
	m.Register("after", func() { ran = true })
	m.Register("stuck", func() { <-release })

	m.Shutdown()
	assert.True(t, ran)
}
