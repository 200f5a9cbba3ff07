package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RenderBlock renders a block to HTML based on its type and data
func RenderBlock(blockType string, dataJSON string) (string, error) {
	switch blockType {
	case "text":
		return renderTextBlock(dataJSON)
	case "markdown":
		return renderMarkdownBlock(dataJSON)
	case "hero":
		return renderTemplateBlock(dataJSON, &HeroBlockData{}, "hero")
	case "stats":
		return renderTemplateBlock(dataJSON, &StatsBlockData{}, "stats")
	case "skills":
		return renderTemplateBlock(dataJSON, &SkillsBlockData{}, "skills")
	case "timeline":
		return renderTemplateBlock(dataJSON, &TimelineBlockData{}, "timeline")
	default:
		return "", fmt.Errorf("unknown block type: %s", blockType)
	}
}

// TextBlockData represents the JSON structure for text and markdown blocks
type TextBlockData struct {
	Content string `json:"content"`
}

// HeroBlockData is the full-height banner on the home page
type HeroBlockData struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	CTALabel   string `json:"cta_label"`
	CTAHref    string `json:"cta_href"`
	Background string `json:"background"`
}

// Stat is a single highlighted figure
type Stat struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// StatsBlockData is a grid of highlighted figures
type StatsBlockData struct {
	Heading string `json:"heading"`
	Intro   string `json:"intro"`
	Compact bool   `json:"compact"`
	Items   []Stat `json:"items"`
}

// Skill is an area of expertise
type Skill struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// SkillsBlockData lists areas of expertise
type SkillsBlockData struct {
	Heading string  `json:"heading"`
	Items   []Skill `json:"items"`
}

// Milestone is a dated entry on the timeline
type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TimelineBlockData lists milestones, newest first
type TimelineBlockData struct {
	Heading string      `json:"heading"`
	Items   []Milestone `json:"items"`
}

// renderTextBlock renders a text block with HTML escaping and line break preservation
func renderTextBlock(dataJSON string) (string, error) {
	var data TextBlockData
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return "", fmt.Errorf("failed to parse text block data: %w", err)
	}

	// Escape HTML to prevent XSS
	safe := html.EscapeString(data.Content)

	// Preserve line breaks
	formatted := strings.ReplaceAll(safe, "\n", "<br>")

	return fmt.Sprintf(`<div class="text-block">%s</div>`, formatted), nil
}

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.Typographer, extension.Linkify),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdownBlock converts markdown to HTML and strips anything unsafe
func renderMarkdownBlock(dataJSON string) (string, error) {
	var data TextBlockData
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return "", fmt.Errorf("failed to parse markdown block data: %w", err)
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(data.Content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return fmt.Sprintf(`<div class="markdown-block">%s</div>`, sanitizer.SanitizeBytes(buf.Bytes())), nil
}

var blockTemplates = template.Must(template.New("blocks").Parse(`
{{define "hero"}}<section class="hero"{{with .Background}} style="background-image: url('{{.}}')"{{end}}>
  <div class="hero-overlay"></div>
  <div class="hero-content reveal">
    <h1 class="hero-title">{{.Heading}}</h1>
    {{with .Subheading}}<p class="hero-subtitle">{{.}}</p>{{end}}
    {{if .CTALabel}}<a class="btn btn-accent" href="{{.CTAHref}}" data-nav>{{.CTALabel}}</a>{{end}}
  </div>
</section>{{end}}
{{define "stats"}}<section class="stats-block{{if .Compact}} compact{{end}}">
  {{with .Heading}}<h2 class="section-title reveal">{{.}}</h2>{{end}}
  {{with .Intro}}<p class="section-intro">{{.}}</p>{{end}}
  <div class="stats-grid">
    {{range .Items}}<div class="stat-card">
      <span class="icon icon-{{.Icon}}" aria-hidden="true"></span>
      <h3 class="stat-value">{{.Value}}</h3>
      <p class="stat-label">{{.Label}}</p>
    </div>{{end}}
  </div>
</section>{{end}}
{{define "skills"}}<section class="skills-block">
  {{with .Heading}}<h3>{{.}}</h3>{{end}}
  <div class="skills-grid">
    {{range .Items}}<div class="skill"><span class="icon icon-{{.Icon}}" aria-hidden="true"></span><span>{{.Text}}</span></div>{{end}}
  </div>
</section>{{end}}
{{define "timeline"}}<section class="timeline-block">
  {{with .Heading}}<h3>{{.}}</h3>{{end}}
  <ol class="timeline">
    {{range .Items}}<li class="milestone">
      <span class="icon icon-award" aria-hidden="true"></span>
      <div class="milestone-body">
        <div class="milestone-head"><h4>{{.Title}}</h4><span class="milestone-year">{{.Year}}</span></div>
        <p>{{.Description}}</p>
      </div>
    </li>{{end}}
  </ol>
</section>{{end}}
`))

// renderTemplateBlock decodes dataJSON into data and executes the named template
func renderTemplateBlock(dataJSON string, data interface{}, name string) (string, error) {
	if err := json.Unmarshal([]byte(dataJSON), data); err != nil {
		return "", fmt.Errorf("failed to parse %s block data: %w", name, err)
	}

	var buf bytes.Buffer
	if err := blockTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s block: %w", name, err)
	}
	return buf.String(), nil
}
