package prompt

// Placeholder is the single substitution point every template carries.
// Rendering is a plain string replacement; there is deliberately no template
// engine behind this.
const Placeholder = "{content}"

type builtin struct {
	Name        string
	Description string
	Template    string
}

// builtins is the in-memory registry synthesized at read time under ids of
// the form "default_<type>". These are never persisted and never mutable.
var builtins = map[string]builtin{
	"diary": {
		Name:        "Diary Enhancement",
		Description: "Improves grammar, flow, and adds descriptive language while maintaining personal tone",
		Template: `You are a helpful writing assistant. Please enhance this diary entry by:

1. Improving grammar and flow
2. Adding more descriptive language where appropriate
3. Suggesting better word choices
4. Maintaining the personal, reflective tone
5. Adding emotional depth where appropriate

Original diary entry:
{content}

Enhanced version:`,
	},
	"meeting": {
		Name:        "Meeting Notes Organization",
		Description: "Structures meeting notes with clear headings, action items, and key decisions",
		Template: `You are a professional meeting assistant. Please organize and enhance these meeting notes by:

1. Structuring the content with clear headings
2. Extracting and highlighting action items
3. Summarizing key decisions
4. Improving clarity and readability
5. Adding missing context where helpful

Original meeting notes:
{content}

Organized version:`,
	},
	"braindump": {
		Name:        "Brain Dump Organization",
		Description: "Categorizes thoughts into logical groups and creates clear structure",
		Template: `You are a productivity assistant. Please organize this brain dump by:

1. Categorizing thoughts into logical groups
2. Creating a clear structure with headings
3. Identifying actionable items vs. ideas
4. Improving clarity and readability
5. Prioritizing items by importance

Original brain dump:
{content}

Organized version:`,
	},
	"brainstorm": {
		Name:        "Brainstorm Enhancement",
		Description: "Expands on ideas, adds variations, and suggests implementation steps",
		Template: `You are a creative thinking assistant. Please enhance this brainstorming session by:

1. Expanding on promising ideas
2. Adding related concepts and variations
3. Organizing ideas by theme or category
4. Suggesting next steps for implementation
5. Identifying potential challenges and solutions

Original brainstorm:
{content}

Enhanced version:`,
	},
	"summary": {
		Name:        "Content Summarization",
		Description: "Creates concise summaries while preserving key information",
		Template: `You are a summarization expert. Please create a clear, concise summary of this content by:

1. Identifying the main points and key information
2. Removing redundant or less important details
3. Maintaining the original meaning and context
4. Using clear, readable language
5. Organizing information logically

Original content:
{content}

Summary:`,
	},
	"expand": {
		Name:        "Content Expansion",
		Description: "Expands brief content with more detail, examples, and context",
		Template: `You are a content expansion specialist. Please expand this content by:

1. Adding relevant details and context
2. Providing examples and explanations
3. Including related information
4. Improving structure and flow
5. Maintaining the original intent

Original content:
{content}

Expanded version:`,
	},
	"translate": {
		Name:        "Language Translation",
		Description: "Translates content into English while preserving meaning and tone",
		Template: `You are an AI assistant specialized in language translation. Your task is to translate the provided content into English while preserving its original meaning and tone.

Content to translate:
{content}

Translated version (English):`,
	},
	"default": {
		Name:        "General Note Enhancement",
		Description: "General purpose enhancement for any type of note",
		Template: `You are a helpful writing assistant. Please enhance this note by:

1. Improving grammar and clarity
2. Better organizing the content
3. Adding structure where helpful
4. Maintaining the original intent and tone
5. Making it more engaging and readable

Original note:
{content}

Enhanced version:`,
	},
}
