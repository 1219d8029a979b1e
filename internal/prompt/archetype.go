package prompt

import "fmt"

// VisualType is the fixed visual archetype family a slide is rendered as.
type VisualType string

const (
	VisualSwimlane       VisualType = "swimlane"
	VisualDiagram        VisualType = "diagram"
	VisualComparison     VisualType = "comparison"
	VisualRisk           VisualType = "risk_visualization"
	VisualTransformation VisualType = "transformation"
	VisualGeneric        VisualType = "generic"
)

// frameFunc builds the canned narrative framing for one archetype. The
// returned text always embeds the segment title and body so that identical
// segment text under different archetypes produces different prompts (and
// therefore different cache digests).
type frameFunc func(title, body string) string

// Archetype is a fixed visual-type template. The headline becomes the slide
// title when the segment declares none of its own.
type Archetype struct {
	Name     string
	Visual   VisualType
	Headline string
	Notes    string
	frame    frameFunc
}

// Default archetypes, one per visual family.
var (
	SystemsLandscape = Archetype{
		Name:     "systems_landscape",
		Visual:   VisualDiagram,
		Headline: "Current Landscape: Disparate Systems",
		Notes:    "Show the named systems as labeled boxes with icons and the tools each one owns",
		frame:    frameSystemsLandscape,
	}

	ProcessFlow = Archetype{
		Name:     "process_flow",
		Visual:   VisualSwimlane,
		Headline: "The AS-IS Process Journey",
		Notes:    "Create a swimlane diagram with one lane per role and numbered process steps",
		frame:    frameProcessFlow,
	}

	RiskMatrix = Archetype{
		Name:     "risk_matrix",
		Visual:   VisualRisk,
		Headline: "Complexity Creates Friction and Risk",
		Notes:    "Show a risk matrix with stages and severity indicators",
		frame:    frameRiskMatrix,
	}

	FutureVision = Archetype{
		Name:     "future_vision",
		Visual:   VisualDiagram,
		Headline: "The Future State: Integrated Ecosystem",
		Notes:    "Create a staged left-to-right flow with icons between stages",
		frame:    frameFutureVision,
	}

	Comparison = Archetype{
		Name:     "comparison",
		Visual:   VisualComparison,
		Headline: "From Drag to Efficiency",
		Notes:    "Show a before vs after split with matched rows",
		frame:    frameComparison,
	}

	TransformationSummary = Archetype{
		Name:     "transformation_summary",
		Visual:   VisualTransformation,
		Headline: "The Transformation",
		Notes:    "Show transformation arrows from old state to new state",
		frame:    frameTransformation,
	}

	Generic = Archetype{
		Name:     "generic_infographic",
		Visual:   VisualGeneric,
		Headline: "Key Points",
		Notes:    "Organize the content into a clear visual hierarchy with labeled sections",
		frame:    frameGeneric,
	}
)

// DefaultArchetypes returns the standard ordinal-to-archetype table. The map
// is rebuilt on every call so a caller can mutate its copy freely; builders
// treat whatever table they are given as immutable.
func DefaultArchetypes() map[int]Archetype {
	return map[int]Archetype{
		2:  SystemsLandscape,
		3:  ProcessFlow,
		4:  RiskMatrix,
		8:  FutureVision,
		9:  Comparison,
		12: TransformationSummary,
	}
}

func frameSystemsLandscape(title, body string) string {
	return fmt.Sprintf(
		"Map the current systems landscape titled %q. Depict every system named below as its own labeled box and make the disconnection between them visible.\n\nSOURCE CONTENT:\n%s",
		title, body)
}

func frameProcessFlow(title, body string) string {
	return fmt.Sprintf(
		"Lay out the end-to-end process titled %q as swimlanes. Derive the roles and ordered steps from the content below and keep every step inside its owning lane.\n\nSOURCE CONTENT:\n%s",
		title, body)
}

func frameRiskMatrix(title, body string) string {
	return fmt.Sprintf(
		"Visualize the risks described in %q as a severity matrix. Place each risk from the content below on the matrix and flag the highest-friction stages.\n\nSOURCE CONTENT:\n%s",
		title, body)
}

func frameFutureVision(title, body string) string {
	return fmt.Sprintf(
		"Illustrate the target state titled %q as an integrated flow. Show the stages from the content below connected left to right into one ecosystem.\n\nSOURCE CONTENT:\n%s",
		title, body)
}

func frameComparison(title, body string) string {
	return fmt.Sprintf(
		"Contrast the two states described in %q side by side. Pull the before and after facts from the content below and align them row by row.\n\nSOURCE CONTENT:\n%s",
		title, body)
}

func frameTransformation(title, body string) string {
	return fmt.Sprintf(
		"Summarize the transformation titled %q. Show each shift from the content below as an arrow from the old state to the new one.\n\nSOURCE CONTENT:\n%s",
		title, body)
}

func frameGeneric(title, body string) string {
	return fmt.Sprintf(
		"Present the content titled %q as a structured infographic. Group the facts below into clearly labeled sections with a strong visual hierarchy.\n\nSOURCE CONTENT:\n%s",
		title, body)
}
