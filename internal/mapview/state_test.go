package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailStateToggle(t *testing.T) {
	s := Closed()
	_, open := s.Index()
	assert.False(t, open)

	s = s.Activate(2)
	assert.True(t, s.IsOpen(2))
	assert.Equal(t, "Open(2)", s.String())

	s = s.Activate(2)
	assert.Equal(t, Closed(), s)
	assert.Equal(t, "Closed", s.String())
}

func TestDetailStateSwitch(t *testing.T) {
	s := Closed().Activate(1).Activate(4)
	i, open := s.Index()
	assert.True(t, open)
	assert.Equal(t, 4, i)
	assert.False(t, s.IsOpen(1))
}

func TestZeroValueIsClosed(t *testing.T) {
	var s DetailState
	assert.Equal(t, Closed(), s)
	assert.False(t, s.IsOpen(0))
}

func TestProgressClamping(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		n        int
		want     int
	}{
		{"within range", 2, 5, 2},
		{"above range", 9, 5, 4},
		{"negative", -3, 5, 0},
		{"no markers", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampProgress(tt.progress, tt.n))
		})
	}

	assert.Equal(t, 4, Advance(4, 5))
	assert.Equal(t, 3, Advance(2, 5))
	assert.Equal(t, 0, Retreat(0, 5))
	assert.Equal(t, 1, Retreat(2, 5))
}
