package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepDisplayFallbacks(t *testing.T) {
	var s Step
	assert.Equal(t, "Step 4", s.DisplayTitle(3))
	assert.Equal(t, NoDescription, s.DisplayDescription())
	assert.Equal(t, NoTime, s.DisplayTime())

	s = Step{Title: "Read", Description: "Chapter 1", EstimatedTime: "1h"}
	assert.Equal(t, "Read", s.DisplayTitle(3))
	assert.Equal(t, "Chapter 1", s.DisplayDescription())
	assert.Equal(t, "1h", s.DisplayTime())
}

func TestResourceLabel(t *testing.T) {
	assert.Equal(t, "Docs", Resource{Title: "Docs", URL: "https://go.dev"}.Label())
	assert.Equal(t, "https://go.dev", Resource{URL: "https://go.dev"}.Label())
	assert.True(t, Resource{URL: "https://go.dev"}.IsLink())
	assert.False(t, Resource{Title: "Book"}.IsLink())
}

func TestVisibleResources(t *testing.T) {
	s := Step{Resources: []Resource{{Title: "A"}, {Type: "video"}, {URL: "https://b"}}}
	got := s.VisibleResources()
	assert.Len(t, got, 2)
}

func TestPlanAccessors(t *testing.T) {
	var nilPlan *Plan
	assert.Equal(t, 0, nilPlan.Len())
	assert.True(t, nilPlan.IsEmpty())
	_, ok := nilPlan.Step(0)
	assert.False(t, ok)

	p := &Plan{Steps: []Step{{Title: "x"}}}
	s, ok := p.Step(0)
	assert.True(t, ok)
	assert.Equal(t, "x", s.Title)
	_, ok = p.Step(1)
	assert.False(t, ok)
	_, ok = p.Step(-1)
	assert.False(t, ok)
}
