package part

// Comment is an RFC 5322 comment, possibly containing nested comments. The
// Value of a comment is always empty so that comments never contribute to
// the semantic value of a field. The flattened text of the comment, with
// nested comments restored in parentheses, is available from Comment().
type Comment struct {
	base
	children []Part
	text     string
}

// NewComment returns a comment part built from the parts found between the
// parentheses. The flattened text is computed from the children.
func NewComment(children []Part) *Comment {
	cs := make([]Part, len(children))
	copy(cs, children)
	return &Comment{children: cs, text: flatten(cs)}
}

func flatten(children []Part) string {
	var text string
	for _, c := range children {
		switch p := c.(type) {
		case *Comment:
			text += "(" + p.text + ")"
		case *Quoted:
			text += `"` + p.v + `"`
		default:
			text += c.Value()
		}
	}
	return text
}

func (*Comment) Kind() Kind { return KindComment }

// Value is always empty for a comment.
func (*Comment) Value() string { return "" }

// Comment returns the flattened comment text without the outermost
// parentheses.
func (c *Comment) Comment() string { return c.text }

// Children returns a copy of the parts making up the comment body.
func (c *Comment) Children() []Part {
	cs := make([]Part, len(c.children))
	copy(cs, c.children)
	return cs
}

// String returns the comment in parentheses.
func (c *Comment) String() string { return "(" + c.text + ")" }
