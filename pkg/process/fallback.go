package process

import "fmt"

// fallback produces the local transformation used when the completion
// service is unavailable. Availability of a result is prioritized over
// quality of the result; the output is a pure function of type and content.
func fallback(templateType, content string) string {
	switch templateType {
	case "diary":
		return fmt.Sprintf("**Enhanced Diary Entry**\n\n%s\n\n*This entry has been enhanced for better flow and readability while maintaining your personal voice.*", content)
	case "meeting":
		return fmt.Sprintf("## Meeting Notes\n\n**Key Points:**\n%s\n\n**Action Items:**\n- [ ] To be determined\n\n**Next Steps:**\n- To be determined", content)
	case "braindump":
		return fmt.Sprintf("## Organized Thoughts\n\n%s\n\n---\n\n**Categories:**\n- Ideas\n- Tasks\n- Questions\n- Notes", content)
	case "brainstorm":
		return fmt.Sprintf("## Brainstorming Session\n\n**Original Ideas:**\n%s\n\n**Expanded Ideas:**\n- [Original idea] + variations and implementation steps\n\n**Next Actions:**\n- Research feasibility\n- Create implementation plan", content)
	case "summary":
		return fmt.Sprintf("## Summary\n\n**Key Points:**\n%s\n\n**Main Takeaways:**\n- [Key insight 1]\n- [Key insight 2]\n- [Key insight 3]", content)
	case "expand":
		return fmt.Sprintf("## Expanded Content\n\n**Original:**\n%s\n\n**Expanded Version:**\nThis is an expanded version of your content with additional details, examples, and context to provide a more comprehensive understanding of the topic.", content)
	case "translate":
		return fmt.Sprintf("## Translated Content\n\n**Original:**\n%s\n\n**Translation:**\n[This would be the translated version of your content]", content)
	default:
		return fmt.Sprintf("## Enhanced Note\n\n%s\n\n---\n\n*This note has been enhanced for better clarity and structure.*", content)
	}
}
