package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a plan from a JSON or YAML file.
func LoadFile(path string) (*Plan, error) {
	cleanPath := filepath.Clean(path)

	// #nosec G304 - plan paths come from the command line
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, &LoadError{Kind: ErrKindRead, Source: cleanPath, Cause: err}
	}
	return Parse(data, cleanPath)
}

// Load reads a plan from r. source names the input in errors.
func Load(r io.Reader, source string) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Kind: ErrKindRead, Source: source, Cause: err}
	}
	return Parse(data, source)
}

// Parse decodes a plan document. Accepted shapes are a bare list of steps,
// a mapping with a "steps" list, and a planner response whose
// timeline.milestones[].steps are flattened in order. Empty input yields an
// empty plan.
func Parse(data []byte, source string) (*Plan, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &Plan{Steps: []Step{}}, nil
	}

	doc, err := decode(trimmed, source)
	if err != nil {
		return nil, &LoadError{Kind: ErrKindParse, Source: source, Cause: err}
	}

	p, err := fromDocument(doc)
	if err != nil {
		return nil, &LoadError{Kind: ErrKindUnsupported, Source: source, Cause: err}
	}
	return p, nil
}

func decode(data []byte, source string) (interface{}, error) {
	var doc interface{}
	if looksLikeJSON(data, source) {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return doc, nil
}

func looksLikeJSON(data []byte, source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}
	return data[0] == '{' || data[0] == '['
}

func fromDocument(doc interface{}) (*Plan, error) {
	switch v := doc.(type) {
	case []interface{}:
		return &Plan{Steps: convertSteps(v)}, nil
	case map[string]interface{}:
		return fromMapping(v)
	default:
		return nil, fmt.Errorf("expected a list of steps or a mapping, got %T", doc)
	}
}

func fromMapping(m map[string]interface{}) (*Plan, error) {
	p := &Plan{
		Goal:  stringField(m, "goal"),
		Skill: stringField(m, "skill"),
	}

	if steps, ok := m["steps"].([]interface{}); ok {
		p.Steps = convertSteps(steps)
		return p, nil
	}

	timeline, ok := m["timeline"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("no \"steps\" list or \"timeline\" mapping found")
	}
	milestones, _ := timeline["milestones"].([]interface{})
	p.Steps = []Step{}
	for _, ms := range milestones {
		milestone, ok := ms.(map[string]interface{})
		if !ok {
			continue
		}
		steps, _ := milestone["steps"].([]interface{})
		converted := convertSteps(steps)
		milestoneID := stringField(milestone, "id")
		for i := range converted {
			if converted[i].MilestoneID == "" {
				converted[i].MilestoneID = milestoneID
			}
		}
		p.Steps = append(p.Steps, converted...)
	}
	return p, nil
}

func convertSteps(items []interface{}) []Step {
	steps := make([]Step, 0, len(items))
	for _, item := range items {
		steps = append(steps, convertStep(item))
	}
	return steps
}

// convertStep maps one raw entry onto a Step. Entries that are not mappings
// become empty steps so that indices stay aligned with the source list.
func convertStep(item interface{}) Step {
	m, ok := item.(map[string]interface{})
	if !ok {
		if s, isString := item.(string); isString {
			return Step{Title: s}
		}
		return Step{}
	}

	return Step{
		ID:              stringField(m, "id"),
		Title:           firstField(m, "title", "step"),
		Description:     stringField(m, "description"),
		Resources:       convertResources(m["resources"]),
		EstimatedTime:   firstField(m, "time_estimate", "estimatedTime", "estimated_time"),
		Difficulty:      stringField(m, "difficulty"),
		ExpectedOutcome: firstField(m, "expected_outcome", "expectedOutcome"),
		MilestoneID:     stringField(m, "milestone_id"),
	}
}

func convertResources(raw interface{}) []Resource {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	resources := make([]Resource, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]interface{}:
			resources = append(resources, Resource{
				Title: stringField(v, "title"),
				URL:   stringField(v, "url"),
				Type:  stringField(v, "type"),
			})
		case string:
			resources = append(resources, Resource{Title: v})
		}
	}
	return resources
}

func firstField(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v := stringField(m, key); v != "" {
			return v
		}
	}
	return ""
}

func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
