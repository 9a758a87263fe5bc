package insight

import "fmt"

const promptTemplate = `Generate a 200-character expert analysis about %s for tech professionals. Include:
- Key applications in industry
- Current demand trends
- Salary impact
- Learning curve
- Related technologies`

// BuildPrompt returns the generation prompt for skill.
func BuildPrompt(skill string) string {
	return fmt.Sprintf(promptTemplate, skill)
}
