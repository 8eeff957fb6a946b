package prompt

import (
	"fmt"
	"strings"

	"github.com/pinglanyi/A2UI/internal/domain/protocol"
)

// Prompt is a provider-neutral chat prompt: one system instruction plus
// ordered user content parts. Adapters translate it to their wire shape.
type Prompt struct {
	System string
	Parts  []protocol.Part
}

// Text concatenates the prompt's text parts, for logging and tests.
func (p Prompt) Text() string {
	var sb strings.Builder
	for _, part := range p.Parts {
		if t, ok := part.(protocol.TextPart); ok {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}

// Builder composes prompts from a template set.
type Builder struct {
	tmpl Templates
}

// NewBuilder creates a builder. Zero-value template fields fall back to
// the defaults, so a partial override set is usable as-is.
func NewBuilder(tmpl Templates) *Builder {
	return &Builder{tmpl: tmpl.merged()}
}

// ImageDescription builds the first-pass prompt: describe the attached
// image against the announced catalog.
func (b *Builder) ImageDescription(catalog []byte, image protocol.InlineDataPart) Prompt {
	task := fmt.Sprintf(b.tmpl.ImageTask, string(catalog))
	return Prompt{
		System: b.tmpl.ImageSystem,
		Parts: []protocol.Part{
			protocol.TextPart{Text: task},
			image,
		},
	}
}

// UIGeneration builds the second-pass prompt from the catalog, the user
// instructions, and the optional image description captured by the
// first pass (empty string when no image was supplied).
func (b *Builder) UIGeneration(catalog []byte, imageDescription, instructions string) Prompt {
	task := fmt.Sprintf(b.tmpl.GenerateTask, string(catalog), instructions)
	if imageDescription != "" {
		task += "\n\n" + fmt.Sprintf(b.tmpl.GenerateImageContext, imageDescription)
	}
	return Prompt{
		System: b.tmpl.GenerateSystem,
		Parts:  []protocol.Part{protocol.TextPart{Text: task}},
	}
}
