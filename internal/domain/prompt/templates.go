package prompt

// Templates holds the text fragments the builder composes into prompts.
// Task templates are fmt format strings; the verbs each one expects are
// documented per field and must be preserved by overrides.
type Templates struct {
	// ImageSystem is the system instruction for the image-description call.
	ImageSystem string `yaml:"image_system"`

	// ImageTask frames the image-description request. Verbs: catalog JSON.
	ImageTask string `yaml:"image_task"`

	// GenerateSystem is the system instruction for the UI-generation call.
	GenerateSystem string `yaml:"generate_system"`

	// GenerateTask frames the UI-generation request. Verbs: catalog JSON,
	// user instructions.
	GenerateTask string `yaml:"generate_task"`

	// GenerateImageContext carries the first call's output into the second.
	// Verbs: image description.
	GenerateImageContext string `yaml:"generate_image_context"`
}

// DefaultTemplates returns the built-in prompt set.
func DefaultTemplates() Templates {
	return Templates{
		ImageSystem: `You are a precise visual analyst for user interfaces.

Rules:
- Describe the layout, components, text content, colors, and visual hierarchy in detail.
- Describe only what is visible; do not speculate about hidden behavior.
- Do not greet, apologize, or comment on the task.
- Output the description and nothing else.`,

		ImageTask: `The client renders interfaces from this component catalog:

%s

Describe the attached image precisely enough that the interface could be rebuilt using only those components.`,

		GenerateSystem: `You are a UI generation engine. You emit interface definitions consumed by a dynamic renderer.

Rules:
- Output a single bare JSON object that conforms to the client's component catalog.
- Do not wrap the output in markdown fencing or code blocks.
- Do not add any conversational preamble or explanation.
- Every URL must be absolute and rooted at /.
- Do not reference remote resources; all assets must resolve locally.
- When instructions are ambiguous, produce the simplest interface that satisfies them.`,

		GenerateTask: `The client renders interfaces from this component catalog:

%s

Generate the UI JSON for the following instructions:

%s`,

		GenerateImageContext: `A reference image was provided. Its description:

%s

Match the described layout as closely as the catalog allows.`,
	}
}

// merged fills zero-value fields from the defaults so override files may
// replace any subset of templates.
func (t Templates) merged() Templates {
	def := DefaultTemplates()
	if t.ImageSystem == "" {
		t.ImageSystem = def.ImageSystem
	}
	if t.ImageTask == "" {
		t.ImageTask = def.ImageTask
	}
	if t.GenerateSystem == "" {
		t.GenerateSystem = def.GenerateSystem
	}
	if t.GenerateTask == "" {
		t.GenerateTask = def.GenerateTask
	}
	if t.GenerateImageContext == "" {
		t.GenerateImageContext = def.GenerateImageContext
	}
	return t
}
