package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jwib1009/family-activity-demo/internal/anthropic"
)

var (
	// ErrEmptyResponse means the upstream reply carried no text segments.
	ErrEmptyResponse = errors.New("no text content in Claude response")
	// ErrNoJSONArray means no bracketed span could be located in the text.
	ErrNoJSONArray = errors.New("no JSON array found in Claude response")
	// ErrNotArray means the extracted span parsed to something other than an
	// array of objects.
	ErrNotArray = errors.New("response is not an array")
)

var (
	fenceJSON = regexp.MustCompile("```json\n?")
	fenceBare = regexp.MustCompile("```\n?")
)

// Activities is the parsed upstream payload. Elements keep whatever fields
// the model produced; only a missing id is filled in.
type Activities []map[string]any

// ExtractActivities turns a raw upstream reply into an activity list.
//
// All text segments are concatenated, code fences stripped, and the span from
// the first '[' to the last ']' parsed as JSON. The span scan is deliberately
// not bracket-aware: a stray ']' after the real array corrupts the payload.
// Elements without an id get their 1-based position.
func ExtractActivities(segments []anthropic.ContentBlock) (Activities, error) {
	var text strings.Builder
	for _, seg := range segments {
		if seg.Type == "text" {
			text.WriteString(seg.Text)
		}
	}
	if text.Len() == 0 {
		return nil, ErrEmptyResponse
	}

	jsonText := strings.TrimSpace(text.String())
	jsonText = fenceJSON.ReplaceAllString(jsonText, "")
	jsonText = fenceBare.ReplaceAllString(jsonText, "")

	start := strings.Index(jsonText, "[")
	end := strings.LastIndex(jsonText, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONArray
	}
	jsonText = jsonText[start : end+1]

	var parsed any
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, fmt.Errorf("could not parse activities JSON: %w", err)
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	activities := make(Activities, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, ErrNotArray
		}
		if !presentID(obj["id"]) {
			obj["id"] = i + 1
		}
		activities = append(activities, obj)
	}
	return activities, nil
}

// presentID mirrors the truthiness rule for upstream ids: zero, empty and
// null all count as absent and get replaced by the element's position.
func presentID(v any) bool {
	switch id := v.(type) {
	case nil:
		return false
	case bool:
		return id
	case string:
		return id != ""
	case float64:
		return id != 0
	default:
		return true
	}
}
