package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepNext(t *testing.T) {
	tests := []struct {
		from Step
		want Step
	}{
		{StepStart, StepSector},
		{StepSector, StepAge},
		{StepAge, StepRegistered},
		{StepRegistered, StepAssistance},
		{StepAssistance, StepDone},
		{StepDone, StepDone},
		{Step("bogus"), Step("bogus")},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next())
		})
	}
}

func TestStepIndexIsMonotonic(t *testing.T) {
	s := StepStart
	for s != StepDone {
		next := s.Next()
		assert.Equal(t, s.Index()+1, next.Index())
		s = next
	}
	assert.Equal(t, -1, Step("").Index())
}

func TestNewSession(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := New("whatsapp:+911234567890", now)

	assert.Equal(t, StepStart, s.Step)
	assert.Equal(t, Answers{}, s.Answers)
	assert.Equal(t, now, s.CreatedAt)
	assert.False(t, s.Done())
}

func TestLockerSerializesSameKey(t *testing.T) {
	l := NewLocker(4)
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("user-1")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
