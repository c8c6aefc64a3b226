package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnboundedQueue_PreservesOrder(t *testing.T) {
	q := NewUnboundedQueue[int]()

	// more than both channel buffers, with no consumer running
	for i := 0; i < 1000; i++ {
		require.True(t, q.Push(i))
	}
	q.Close()

	expected := 0
	for item := range q.Out {
		require.Equal(t, expected, item)
		expected++
	}
	require.Equal(t, 1000, expected)
	q.Wait()
}

func TestUnboundedQueue_PushAfterClose(t *testing.T) {
	q := NewUnboundedQueue[string]()
	q.Close()
	q.Close()

	require.False(t, q.Push("late"))
	_, ok := <-q.Out
	require.False(t, ok)
}
