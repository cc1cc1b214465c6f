package printer

// DefaultBreakLimit is the column after which breakable tokens wrap.
const DefaultBreakLimit = 78

// DefaultIndentSize is the number of spaces per nesting level.
const DefaultIndentSize = 2

// StyleFunc decorates an already-rendered token for display. It must be a
// pure transform: decoration is applied after the token's length has been
// charged to the line, so styling never affects wrapping decisions.
type StyleFunc func(string) string

// Styles bundles the style functions the engine applies to the token
// classes it knows about. Any entry may be nil.
type Styles struct {
	String   StyleFunc // quoted string literals
	Number   StyleFunc // integer and float literals
	Keyword  StyleFunc // nil, true, false, <fun>
	Key      StyleFunc // record keys
	Punct    StyleFunc // delimiters, separators, terminators
	Label    StyleFunc // type-name labels (Annotate)
	Circular StyleFunc // cycle placeholders
}

// Options configures a Printer. The zero value is usable: zero or negative
// fields fall back to their defaults, except BreakLimit where zero is
// meaningful and requests maximally expanded output (every breakable token
// wraps).
type Options struct {
	// IndentSize is the number of spaces per nesting level. Negative
	// values are replaced with the default.
	IndentSize int

	// LineBreak is the line terminator. Empty means "\n".
	LineBreak string

	// BreakLimit is the maximum number of columns before a breakable
	// token wraps. Zero breaks at every breakable point; negative values
	// are clamped to zero. The overflow check is strict: a token that
	// exactly fills the line does not wrap.
	BreakLimit int

	// Raw skips the renderer registry and always uses the generic
	// record/array rendering.
	Raw bool

	// Color enables the Styles functions. When false all styling is
	// skipped even if style functions are set.
	Color bool

	// Annotate prefixes generic struct and named-map renderings with
	// their type name.
	Annotate bool

	// Styles holds the style functions used when Color is set.
	Styles Styles
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		IndentSize: DefaultIndentSize,
		LineBreak:  "\n",
		BreakLimit: DefaultBreakLimit,
	}
}

// normalize clamps malformed option values into usable ranges. Degenerate
// configurations produce degenerate-but-valid output, never an error.
func (o Options) normalize() Options {
	if o.IndentSize < 0 {
		o.IndentSize = DefaultIndentSize
	}
	if o.LineBreak == "" {
		o.LineBreak = "\n"
	}
	if o.BreakLimit < 0 {
		o.BreakLimit = 0
	}
	return o
}
