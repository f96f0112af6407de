package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_SetNotifiesInOrder(t *testing.T) {
	s := NewSignal(0)
	var got []string
	s.Subscribe(func(v int) { got = append(got, "a") })
	s.Subscribe(func(v int) { got = append(got, "b") })

	s.Set(1)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, s.Get())
}

func TestSignal_UnsubscribeMiddle(t *testing.T) {
	s := NewSignal("")
	var got []string
	s.Subscribe(func(v string) { got = append(got, "a:"+v) })
	unsub := s.Subscribe(func(v string) { got = append(got, "b:"+v) })
	s.Subscribe(func(v string) { got = append(got, "c:"+v) })

	unsub()
	unsub()
	s.Set("x")
	assert.Equal(t, []string{"a:x", "c:x"}, got)
}

func TestSignal_SubscriberMaySet(t *testing.T) {
	s := NewSignal(0)
	s.Subscribe(func(v int) {
		if v < 3 {
			s.Set(v + 1)
		}
	})
	s.Set(1)
	assert.Equal(t, 3, s.Get())
}
