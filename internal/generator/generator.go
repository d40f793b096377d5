// Package generator produces draft article content. The production system
// delegates to an external text-generation service; that call sits behind
// ContentGenerator so the rest of the platform only sees a draft.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
)

// DraftRequest is the input to draft generation.
type DraftRequest struct {
	Topic    string
	Category string
}

// Draft is generated article scaffolding; the author edits it before
// submission.
type Draft struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
}

// ContentGenerator produces a draft for a topic.
type ContentGenerator interface {
	GenerateDraft(ctx context.Context, req DraftRequest) (*Draft, error)
}

const draftBodyTemplate = `## {{.Topic}}

Start with why {{.Topic}} matters to your readers right now.

### Background

Lay out the context a newcomer to {{.Category}} needs before the main argument.

### The core idea

Develop the main point. Concrete examples beat abstractions.

### Takeaways

Close with what the reader should do or think differently about {{.Topic}}.
`

// TemplateGenerator renders a structured draft from a fixed template. It is
// the default ContentGenerator when no external service is configured.
type TemplateGenerator struct {
	tmpl *template.Template
}

// NewTemplateGenerator creates a TemplateGenerator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{
		tmpl: template.Must(template.New("draft").Parse(draftBodyTemplate)),
	}
}

// GenerateDraft renders the draft scaffold for the request.
func (g *TemplateGenerator) GenerateDraft(ctx context.Context, req DraftRequest) (*Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	var body bytes.Buffer
	if err := g.tmpl.Execute(&body, req); err != nil {
		return nil, fmt.Errorf("render draft: %w", err)
	}

	return &Draft{
		Title:    req.Topic,
		Subtitle: "A closer look at " + req.Topic,
		Body:     body.String(),
	}, nil
}
