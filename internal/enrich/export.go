package enrich

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/pathlight/pathlight/internal/planner"
)

// Format selects an export rendering.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Export renders the path in the requested format. The returned content type
// matches the rendering.
func Export(path *planner.LearningPath, format Format) (content []byte, contentType string, err error) {
	md := renderMarkdown(path)
	switch format {
	case FormatMarkdown, "":
		return []byte(md), "text/markdown; charset=utf-8", nil
	case FormatHTML:
		page, err := renderHTML(path, md)
		if err != nil {
			return nil, "", err
		}
		return page, "text/html; charset=utf-8", nil
	default:
		return nil, "", fmt.Errorf("unknown export format %q", format)
	}
}

// renderMarkdown writes the path as a standalone markdown document.
func renderMarkdown(path *planner.LearningPath) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", path.Goal)
	fmt.Fprintf(&b, "%d-day plan, %s difficulty.\n\n", path.DurationDays, path.Difficulty)
	if path.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", path.Description)
	}

	for _, day := range path.DailyPlans {
		fmt.Fprintf(&b, "## Day %d: %s\n\n", day.Day, day.Title)
		if day.EstimatedTime != "" {
			fmt.Fprintf(&b, "Estimated time: %s\n\n", day.EstimatedTime)
		}
		if len(day.Objectives) > 0 {
			b.WriteString("### Objectives\n\n")
			for _, obj := range day.Objectives {
				fmt.Fprintf(&b, "- %s\n", obj)
			}
			b.WriteString("\n")
		}
		if day.Content != "" {
			fmt.Fprintf(&b, "%s\n\n", day.Content)
		}
		if len(day.Activities) > 0 {
			b.WriteString("### Activities\n\n")
			for _, act := range day.Activities {
				fmt.Fprintf(&b, "- %s\n", act)
			}
			b.WriteString("\n")
		}
		if len(day.Resources) > 0 {
			b.WriteString("### Resources\n\n")
			for _, res := range day.Resources {
				fmt.Fprintf(&b, "- %s\n", res)
			}
			b.WriteString("\n")
		}
		if len(day.Adaptations) > 0 {
			b.WriteString("### Study hints\n\n")
			for _, hint := range day.Adaptations {
				fmt.Fprintf(&b, "- %s\n", hint)
			}
			b.WriteString("\n")
		}
		if day.Checkpoint != "" {
			fmt.Fprintf(&b, "> Checkpoint: %s\n\n", day.Checkpoint)
		}
	}

	if len(path.Checkpoints) > 0 {
		b.WriteString("## Adaptive checkpoints\n\n")
		for _, cp := range path.Checkpoints {
			fmt.Fprintf(&b, "- Day %d: %s\n", cp.Day, cp.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderHTML converts the markdown rendering into a standalone HTML page.
func renderHTML(path *planner.LearningPath, markdown string) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	tmpl, err := template.New("export").Parse(exportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing export template: %w", err)
	}

	var page bytes.Buffer
	err = tmpl.Execute(&page, struct {
		Title   string
		Content template.HTML
	}{
		Title:   path.Goal,
		Content: template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering export page: %w", err)
	}
	return page.Bytes(), nil
}

const exportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; color: #1f2328; }
h1 { border-bottom: 1px solid #d1d9e0; padding-bottom: .3em; }
h2 { margin-top: 2rem; }
blockquote { border-left: 4px solid #0969da; margin: 0; padding: .2rem 1rem; background: #f6f8fa; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; border-radius: 6px; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`
