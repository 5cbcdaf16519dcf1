package plan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBareJSONList(t *testing.T) {
	data := `[
  {"title": "Learn scales", "description": "Major and minor", "time_estimate": "2 hours",
   "resources": [{"title": "Scale chart", "url": "https://example.com/scales", "type": "article"}]},
  {"step": "Chords", "estimatedTime": "3 days"}
]`
	p, err := Parse([]byte(data), "plan.json")
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())

	first := p.Steps[0]
	assert.Equal(t, "Learn scales", first.Title)
	assert.Equal(t, "2 hours", first.EstimatedTime)
	require.Len(t, first.Resources, 1)
	assert.Equal(t, "https://example.com/scales", first.Resources[0].URL)
	assert.Equal(t, "article", first.Resources[0].Type)

	second := p.Steps[1]
	assert.Equal(t, "Chords", second.Title)
	assert.Equal(t, "3 days", second.EstimatedTime)
	assert.Empty(t, second.Resources)
}

func TestParseYAMLStepsMapping(t *testing.T) {
	data := `goal: Play a song
skill: guitar
steps:
  - title: Tune the guitar
    difficulty: Easy
    expected_outcome: In-tune strings
    time_estimate: 1
  - description: Practice daily
`
	p, err := Parse([]byte(data), "plan.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Play a song", p.Goal)
	assert.Equal(t, "guitar", p.Skill)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, "Easy", p.Steps[0].Difficulty)
	assert.Equal(t, "In-tune strings", p.Steps[0].ExpectedOutcome)
	assert.Equal(t, "1", p.Steps[0].EstimatedTime)
	assert.Equal(t, "", p.Steps[1].Title)
	assert.Equal(t, "Step 2", p.Steps[1].DisplayTitle(1))
}

func TestParsePlannerTimeline(t *testing.T) {
	data := `{
  "goal": "Speak Spanish",
  "timeline": {
    "estimated_weeks": 4,
    "milestones": [
      {"id": "m1", "steps": [{"id": "s1", "title": "Alphabet"}, {"id": "s2", "title": "Numbers"}]},
      {"id": "m2", "steps": [{"id": "s3", "title": "Greetings", "milestone_id": "custom"}]}
    ]
  }
}`
	p, err := Parse([]byte(data), "")
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"Alphabet", "Numbers", "Greetings"}, []string{p.Steps[0].Title, p.Steps[1].Title, p.Steps[2].Title})
	assert.Equal(t, "m1", p.Steps[1].MilestoneID)
	assert.Equal(t, "custom", p.Steps[2].MilestoneID)
}

func TestParseMalformedResourcesDegrade(t *testing.T) {
	data := `[{"title": "A", "resources": "not a list"}, {"title": "B", "resources": ["Just a name", 42]}]`
	p, err := Parse([]byte(data), "")
	require.NoError(t, err)
	assert.Empty(t, p.Steps[0].Resources)
	require.Len(t, p.Steps[1].Resources, 1)
	assert.Equal(t, "Just a name", p.Steps[1].Resources[0].Title)
}

func TestParseNonMappingStepsKeepAlignment(t *testing.T) {
	p, err := Parse([]byte(`["Warm up", 7, {"title": "Cool down"}]`), "")
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	assert.Equal(t, "Warm up", p.Steps[0].Title)
	assert.Equal(t, "", p.Steps[1].Title)
	assert.Equal(t, "Cool down", p.Steps[2].Title)
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse([]byte("   \n"), "")
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind ErrorKind
	}{
		{"broken json", `{"steps": [`, ErrKindParse},
		{"broken yaml", "steps:\n  - title: \"unterminated\n", ErrKindParse},
		{"scalar document", `"just text"`, ErrKindUnsupported},
		{"mapping without steps", `{"name": "x"}`, ErrKindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "input")
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yml")
	require.NoError(t, os.WriteFile(path, []byte("- title: One\n- title: Two\n"), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrKindRead))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadReader(t *testing.T) {
	p, err := Load(strings.NewReader(`{"steps": [{"title": "Only"}]}`), "")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Len())
}
