// Package prompt assembles model-ready prompts for the generation pipeline.
//
// Two prompt shapes exist, one per model call:
//
//   - Image description: asks the model to describe an attached UI mockup
//     in terms of the announced component catalog, with a system
//     instruction that suppresses conversational filler.
//   - UI generation: asks the model to emit a bare UI-protocol JSON
//     object built from the catalog, the user instructions, and the
//     optional image description captured by the first call.
//
// Templates ship with working defaults and can be overridden from a YAML
// file for prompt iteration without a rebuild.
//
// Example Usage:
//
//	builder := prompt.NewBuilder(prompt.DefaultTemplates())
//	p := builder.UIGeneration(snap.Catalog, "", "build a login form")
//	text, err := client.Generate(ctx, p)
package prompt
