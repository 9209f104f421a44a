package md2html

import "strings"

// CalloutType classifies an Obsidian callout marker with Catppuccin colors.
type CalloutType struct {
	Name  string // canonical identifier
	Icon  string // Nerd Font glyph
	Color string // Catppuccin color token
}

// CalloutTypeFor resolves a free-text callout label case-insensitively.
// Unknown labels fall back to a neutral "note" classification.
func CalloutTypeFor(label string) CalloutType {
	switch strings.ToLower(label) {
	case "note", "info":
		return CalloutType{Name: "note", Icon: "", Color: "blue"} // nf-fa-info_circle
	case "tip", "hint", "important":
		return CalloutType{Name: "tip", Icon: "", Color: "teal"} // nf-fa-lightbulb_o
	case "warning", "caution", "attention":
		return CalloutType{Name: "warning", Icon: "", Color: "yellow"} // nf-fa-exclamation_triangle
	case "danger", "error":
		return CalloutType{Name: "danger", Icon: "", Color: "red"} // nf-fa-fire
	case "success", "check", "done":
		return CalloutType{Name: "success", Icon: "", Color: "green"} // nf-fa-check_circle
	case "question", "help", "faq":
		return CalloutType{Name: "question", Icon: "", Color: "mauve"} // nf-fa-question_circle
	case "example":
		return CalloutType{Name: "example", Icon: "", Color: "lavender"} // nf-fa-file_text_o
	case "quote", "cite":
		return CalloutType{Name: "quote", Icon: "", Color: "flamingo"} // nf-fa-quote_left
	case "bug":
		return CalloutType{Name: "bug", Icon: "", Color: "maroon"} // nf-fa-bug
	case "abstract", "summary", "tldr":
		return CalloutType{Name: "abstract", Icon: "", Color: "sky"} // nf-fa-file_text
	case "code", "snippet":
		return CalloutType{Name: "code", Icon: "", Color: "peach"} // nf-fa-code
	case "todo", "task":
		return CalloutType{Name: "todo", Icon: "", Color: "sapphire"} // nf-fa-check_square_o
	default:
		return CalloutType{Name: "note", Icon: "", Color: "surface2"} // nf-oct-pin
	}
}
