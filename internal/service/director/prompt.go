package director

import (
	"fmt"
	"strings"

	"github.com/kitround/director/internal/model/persona"
)

const directorInstructions = `You are The Director - kitround's master orchestrator.
Task: interpret the user's ask, decide which specialist(s) to use, collate a single, user-ready answer.
Always: British English; write "kitround" in lowercase; humble, values-led, clear.

Routing:
- If the user prefixes %s, use only that mode.
- Otherwise, choose up to 2-3 modes sensibly (e.g., LENS->SPARK; or LENS->CONNECTOR).
- Do not show internal role chatter; produce one cohesive answer.

Output format (always):
Use Markdown for all formatting (### headings, bullet lists, tables). No code blocks.
1) Director's summary (1-2 sentences)
2) Main answer (sections, bullets, tables as useful)
3) What I did (2-4 bullets; high-level; no chain-of-thought)
4) Assumptions (only if needed)
5) Next steps (concrete actions)`

// BuildSystemPrompt assembles the Director's instructions together with every
// specialist's own instruction block. Which specialist actually answers is
// the model's call; this code only hands it the briefing.
func BuildSystemPrompt(personas persona.Store) string {
	specialists := personas.List()

	tags := make([]string, 0, len(specialists))
	for _, spec := range specialists {
		tags = append(tags, "["+spec.Mode+"]")
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(directorInstructions, strings.Join(tags, "/")))

	for _, spec := range specialists {
		builder.WriteString("\n\n--- Specialist ")
		builder.WriteString(spec.Mode)
		builder.WriteString(" ---\n")
		builder.WriteString(spec.Instructions)
	}

	return builder.String()
}
