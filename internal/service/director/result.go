package director

// Result wraps the agent runtime's final output. Two shapes occur in
// practice: a bare string, and an object exposing a text field. Anything
// else normalizes to the empty string.
type Result struct {
	FinalOutput any `json:"finalOutput,omitempty"`
}

// TextOutput is the object-shaped variant of a runtime result.
type TextOutput struct {
	Text string `json:"text"`
}

// Text extracts the display string from the result: a string output is used
// as-is, an object output contributes its text field, everything else yields
// "".
func (r Result) Text() string {
	switch out := r.FinalOutput.(type) {
	case string:
		return out
	case TextOutput:
		return out.Text
	case *TextOutput:
		if out != nil {
			return out.Text
		}
	case map[string]any:
		if text, ok := out["text"].(string); ok {
			return text
		}
	}
	return ""
}
