package printer

// BlockDesc describes one kind of nested delimiter structure. Open/Close
// are the delimiter tokens, Empty the fixed form used when the block closes
// without items. Sep is emitted between items (followed by a space in-line),
// Term after every item. The *AtBreak fields are the line-end alternates.
type BlockDesc struct {
	Open        string
	OpenAtBreak string
	Close       string
	Empty       string

	Sep        string
	SepAtBreak string

	Term        string
	TermAtBreak string

	// Trail is emitted once after the last item, before the closing
	// token. Most block kinds leave it empty.
	Trail        string
	TrailAtBreak string
}

// Built-in block kinds. Braces terminate items with ";" (dropped at line
// ends), Brackets and Parens separate with "," (kept at line ends).
var (
	Braces = BlockDesc{
		Open: "{ ", OpenAtBreak: "{",
		Close: " }", Empty: "{}",
		Term: ";", TermAtBreak: "",
	}

	Brackets = BlockDesc{
		Open: "[", OpenAtBreak: "[",
		Close: "]", Empty: "[]",
		Sep: ",", SepAtBreak: ",",
	}

	Parens = BlockDesc{
		Open: "(", OpenAtBreak: "(",
		Close: ")", Empty: "()",
		Sep: ",", SepAtBreak: ",",
	}

	// Group is an indent-only block: no delimiters, just one more level
	// of indentation for everything inside it.
	Group = BlockDesc{}
)

var blockKinds = map[string]BlockDesc{
	"braces":   Braces,
	"brackets": Brackets,
	"parens":   Parens,
	"group":    Group,
}

// Desc looks up a built-in block descriptor by name ("braces", "brackets",
// "parens", "group").
func Desc(name string) (BlockDesc, bool) {
	d, ok := blockKinds[name]
	return d, ok
}

// block is one open nested structure. Blocks form a singly linked stack
// through parent; each block has at most one active child at a time.
// Invariant: depth(child) = depth(parent) + 1, with a parent-less sentinel
// at depth 0.
type block struct {
	desc   BlockDesc
	parent *block
	depth  int

	// pending is set until the opening token has been flushed. It is the
	// emptiness flag too: a block closed while still pending renders the
	// fixed empty form instead of its open/close pair.
	pending bool

	// started is cleared by the first StartItem so separators are only
	// emitted between items.
	started bool
}
