// Package plan defines learning plan steps and loads them from JSON or YAML.
package plan

import "fmt"

// Placeholder text for missing step fields.
const (
	NoDescription = "No description available"
	NoTime        = "Time not specified"
)

// Resource is a reference attached to a step.
type Resource struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// IsLink reports whether the resource should render as a hyperlink.
func (r Resource) IsLink() bool {
	return r.URL != ""
}

// Label returns the text to show for the resource. Links without a title
// show their URL.
func (r Resource) Label() string {
	if r.Title != "" {
		return r.Title
	}
	return r.URL
}

// IsEmpty reports whether the resource has nothing to show.
func (r Resource) IsEmpty() bool {
	return r.Title == "" && r.URL == ""
}

// Step is one entry of a learning plan. Fields are kept as supplied; use the
// Display helpers for rendering.
type Step struct {
	ID              string     `json:"id,omitempty" yaml:"id,omitempty"`
	Title           string     `json:"title" yaml:"title"`
	Description     string     `json:"description" yaml:"description"`
	Resources       []Resource `json:"resources,omitempty" yaml:"resources,omitempty"`
	EstimatedTime   string     `json:"time_estimate" yaml:"time_estimate"`
	Difficulty      string     `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	ExpectedOutcome string     `json:"expected_outcome,omitempty" yaml:"expected_outcome,omitempty"`
	MilestoneID     string     `json:"milestone_id,omitempty" yaml:"milestone_id,omitempty"`
}

// DisplayTitle returns the title, or "Step <index+1>" when it is missing.
func (s Step) DisplayTitle(index int) string {
	if s.Title != "" {
		return s.Title
	}
	return StepLabel(index)
}

// DisplayDescription returns the description or its placeholder.
func (s Step) DisplayDescription() string {
	if s.Description != "" {
		return s.Description
	}
	return NoDescription
}

// DisplayTime returns the time estimate or its placeholder.
func (s Step) DisplayTime() string {
	if s.EstimatedTime != "" {
		return s.EstimatedTime
	}
	return NoTime
}

// VisibleResources returns the resources that have a title or URL.
func (s Step) VisibleResources() []Resource {
	out := make([]Resource, 0, len(s.Resources))
	for _, r := range s.Resources {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	return out
}

// StepLabel returns the 1-based "Step N" badge for index.
func StepLabel(index int) string {
	return fmt.Sprintf("Step %d", index+1)
}

// Plan is an ordered list of steps plus optional metadata from the planner.
type Plan struct {
	Goal  string `json:"goal,omitempty" yaml:"goal,omitempty"`
	Skill string `json:"skill,omitempty" yaml:"skill,omitempty"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Len returns the number of steps. A nil plan has none.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Steps)
}

// IsEmpty reports whether the plan has no steps.
func (p *Plan) IsEmpty() bool {
	return p.Len() == 0
}

// Step returns step i and whether it exists.
func (p *Plan) Step(i int) (*Step, bool) {
	if p == nil || i < 0 || i >= len(p.Steps) {
		return nil, false
	}
	return &p.Steps[i], true
}
