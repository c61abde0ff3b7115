package note

// Format is a named markdown skeleton/category used to seed new empty notes.
// Changing a note's format never mutates existing non-empty content.
type Format string

const (
	FormatDefault    Format = "default"
	FormatDiary      Format = "diary"
	FormatMeeting    Format = "meeting"
	FormatBraindump  Format = "braindump"
	FormatBrainstorm Format = "brainstorm"
)

// Formats lists the closed enumeration in display order.
func Formats() []Format {
	return []Format{FormatDefault, FormatDiary, FormatMeeting, FormatBraindump, FormatBrainstorm}
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	switch f {
	case FormatDefault, FormatDiary, FormatMeeting, FormatBraindump, FormatBrainstorm:
		return true
	}
	return false
}

// Skeleton returns the static markdown seed for the format. The default
// format seeds nothing.
func (f Format) Skeleton() string {
	switch f {
	case FormatDiary:
		return "# Dear Diary\n\nToday I...\n\n## Highlights\n\n- \n\n## Mood\n\n- \n\n## Tomorrow I will\n\n- "
	case FormatMeeting:
		return "# Meeting Notes\n\n**Date:** \n**Attendees:** \n\n## Agenda\n\n1. \n\n## Decisions\n\n- \n\n## Action Items\n\n- [ ] \n\n## Notes\n\n"
	case FormatBraindump:
		return "# Brain Dump\n\n## Thoughts\n\n- \n\n## Questions\n\n- \n\n## Ideas\n\n- "
	case FormatBrainstorm:
		return "# Brainstorming Session\n\n## Topic\n\n\n## Ideas\n\n- \n\n## Pros and Cons\n\n| Idea | Pros | Cons |\n| ---- | ---- | ---- |\n|      |      |      |\n\n## Action Items\n\n- [ ] "
	default:
		return ""
	}
}
