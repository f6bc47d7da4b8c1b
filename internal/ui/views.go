package ui

import (
	"bytes"
	"html/template"

	"github.com/jwib1009/family-activity-demo/internal/dto"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Family Activity Finder</title>
<style>
body { font-family: sans-serif; margin: 0; background: #f7f7fb; }
.header { background: #4a6cf7; color: #fff; padding: 1rem 2rem; }
.header-content { display: flex; justify-content: space-between; align-items: center; }
.content-container { display: flex; gap: 2rem; padding: 2rem; align-items: flex-start; }
.search-form-container, .activity-card, .error-container, .results-empty, .loading-container { background: #fff; border-radius: 8px; padding: 1.5rem; box-shadow: 0 1px 4px rgba(0,0,0,.08); }
.form-group { margin-bottom: 1rem; }
.form-label { display: block; margin-bottom: .25rem; font-weight: 600; }
.form-input, .form-textarea { width: 100%; padding: .5rem; }
.results-grid { display: grid; gap: 1rem; }
.btn { padding: .5rem 1rem; border-radius: 6px; text-decoration: none; cursor: pointer; }
.btn-primary { background: #4a6cf7; color: #fff; border: none; }
</style>
</head>
<body>
<div class="app">
<header class="header">
  <div class="header-content">
    <h1 class="header-title"><span class="header-icon">🎯</span> Family Activity Finder</h1>
    <a class="btn btn-secondary new-search-btn" href="/ui">New Search</a>
  </div>
</header>
<main class="main-content">
  <div class="content-container">
    <div class="search-column">
      <div class="search-form-container">
        <form class="search-form" method="post" action="/ui/search">
          <h2 class="form-heading">Find Family Activities</h2>
          <div class="form-group">
            <label for="city" class="form-label">City <span class="required">*</span></label>
            <input type="text" id="city" name="city" class="form-input" placeholder="e.g., San Francisco, CA" value="{{.Form.City}}" required>
          </div>
          <div class="form-group">
            <label for="kidAges" class="form-label">Kid Ages <span class="required">*</span></label>
            <input type="text" id="kidAges" name="kidAges" class="form-input" placeholder="e.g., 5, 8" value="{{.Form.KidAges}}" required>
          </div>
          <div class="form-group">
            <label for="availability" class="form-label">Date &amp; Time <span class="required">*</span></label>
            <input type="text" id="availability" name="availability" class="form-input" placeholder="e.g., Saturday afternoon" value="{{.Form.Availability}}" required>
          </div>
          <div class="form-group">
            <label for="maxDistance" class="form-label">Maximum Distance</label>
            <input type="range" id="maxDistance" name="maxDistance" class="form-slider" min="1" max="50" value="{{.Form.MaxDistance}}">
            <div class="slider-value">{{.Form.MaxDistance}} miles</div>
          </div>
          <div class="form-group">
            <label for="optionalPreferences" class="form-label">Optional Preferences</label>
            <textarea id="optionalPreferences" name="optionalPreferences" class="form-textarea" placeholder="e.g., outdoor, educational, free events" rows="3">{{.Form.OptionalPreferences}}</textarea>
          </div>
          <div class="form-actions">
            <button type="submit" class="btn btn-primary">Search Activities</button>
            <a class="btn btn-secondary" href="/ui">Clear</a>
          </div>
        </form>
      </div>
    </div>
    {{if .Model.HasSearched}}
    <div class="results-column">
      {{template "results" .Model}}
    </div>
    {{end}}
  </div>
</main>
</div>
</body>
</html>

{{define "results"}}
{{if .Loading}}
<div class="loading-container">
  <div class="loading-spinner"></div>
  <h2 class="loading-title">Searching for activities...</h2>
  <p class="loading-message">Claude is searching the web for the best family activities in your area!</p>
</div>
{{else if .Err}}
<div class="error-container">
  <div class="error-icon">❌</div>
  <h2>Oops! Something went wrong</h2>
  <p class="error-message">{{.Err}}</p>
  <p class="error-suggestion">Please try again or adjust your search criteria.</p>
</div>
{{else if not .Activities}}
<div class="results-empty">
  <div class="empty-icon">🔍</div>
  <h2>No activities found</h2>
  <p>Try adjusting your search criteria:</p>
  <ul class="empty-suggestions">
    <li>Increase the maximum distance</li>
    <li>Try a different date or time</li>
    <li>Broaden your preferences</li>
  </ul>
</div>
{{else}}
<div class="results-container">
  <h2 class="results-heading">{{.Heading}}</h2>
  <div class="results-grid">
    {{range .Visible}}
    <div class="activity-card">
      <div class="activity-icon">{{.Icon}}</div>
      <h3 class="activity-name">{{.Name}}</h3>
      <p class="activity-time">{{.Time}}</p>
      <p class="activity-description">{{.Description}}</p>
      <p class="activity-location"><span class="location-icon">📍</span>{{.Location}} &bull; {{.Distance}}</p>
    </div>
    {{end}}
  </div>
</div>
{{end}}
{{end}}`

var page = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	Model *Model
	Form  dto.SearchCriteria
}

// RenderPage renders the full form-plus-results page for the given model.
// A zero MaxDistance gets the form's default slider position.
func RenderPage(m *Model, form dto.SearchCriteria) (string, error) {
	if form.MaxDistance == 0 {
		form.MaxDistance = 10
	}
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{Model: m, Form: form}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
