package pusher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	mu      sync.Mutex
	batches [][]int
}

func (s *sink) push(messages ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, append([]int(nil), messages...))
	return nil
}

func (s *sink) all() (out []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return
}

func TestPushAll(t *testing.T) {
	var s sink
	p := NewPusher(WithPushLogic(s.push), WithElements(1, 2))
	p.AddMessages(3)
	assert.Equal(t, 3, p.Len())

	require.NoError(t, p.PushAll())
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, [][]int{{1, 2, 3}}, s.batches)

	// Empty buffers are not pushed.
	require.NoError(t, p.PushAll())
	assert.Len(t, s.batches, 1)
}

func TestPushAllKeepsBufferOnError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPusher(WithPushLogic(func(...int) error { return boom }), WithElements(1))

	assert.ErrorIs(t, p.PushAll(), boom)
	assert.Equal(t, 1, p.Len())
}

func TestStartStop(t *testing.T) {
	var s sink
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[int](5*time.Millisecond))
	p.Start()

	p.AddMessages(1, 2)
	assert.Eventually(t, func() bool { return len(s.all()) == 2 }, time.Second, time.Millisecond)

	p.AddMessages(3)
	require.NoError(t, p.Stop())
	assert.Equal(t, []int{1, 2, 3}, s.all())

	// A stopped pusher can still be flushed by hand.
	p.AddMessages(4)
	require.NoError(t, p.Stop())
	assert.Equal(t, []int{1, 2, 3, 4}, s.all())
}

func TestErrorHandler(t *testing.T) {
	errs := make(chan error, 1)
	p := NewPusher(
		WithPushLogic(func(...int) error { return errors.New("down") }),
		WithPushInterval[int](time.Millisecond),
		WithErrorHandler[int](func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
		WithElements(1),
	)
	p.Start()

	select {
	case err := <-errs:
		assert.EqualError(t, err, "down")
	case <-time.After(time.Second):
		t.Fatal("error handler not called")
	}
	assert.Error(t, p.Stop())
}
