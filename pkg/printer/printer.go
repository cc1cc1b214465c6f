package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/quill/pkg/registry"
)

// RenderFunc renders one tagged model value. The callback drives the
// printer directly and may open blocks, emit tokens, and recurse into child
// values with Printer.Model.
type RenderFunc func(p *Printer, v interface{})

// Kinded is implemented by model values that advertise a renderer registry
// key. Values whose kind has no registered renderer fall back to the
// generic record rendering.
type Kinded interface {
	Kind() string
}

// Printer renders models to a single destination. Construct one with New;
// the zero value is not usable. Not safe for concurrent use.
type Printer struct {
	w    io.Writer
	opts Options

	line      int // characters on the current line, excluding unflushed indentation
	blk       *block
	visited   map[uintptr]string
	walkDepth int

	renderers registry.Registry[RenderFunc]

	err error
}

// New creates a Printer writing to w. Malformed option values are clamped,
// never rejected.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		w:       w,
		opts:    opts.normalize(),
		blk:     &block{depth: 0},
		visited: make(map[uintptr]string),
	}
}

// SetRenderers installs the kind-to-renderer dispatch table consulted for
// values implementing Kinded. A nil registry (the default) disables
// dispatch, as does Options.Raw.
func (p *Printer) SetRenderers(reg registry.Registry[RenderFunc]) *Printer {
	p.renderers = reg
	return p
}

// Err reports the first sink error encountered. Once set, all further
// output is suppressed. Already-written output is not rolled back.
func (p *Printer) Err() error {
	return p.err
}

/* low-level emission */

func (p *Printer) write(s string) {
	if p.err != nil || s == "" {
		return
	}
	_, err := io.WriteString(p.w, s)
	if err != nil {
		p.err = err
	}
}

func (p *Printer) newline() {
	p.write(p.opts.LineBreak)
	p.line = 0
}

// writeAt writes a resolved token string, charging pending indentation at
// the given depth when the line is empty. Leading spaces are trimmed at the
// start of a line so a break never produces doubled whitespace at the seam.
func (p *Printer) writeAt(s string, depth int, style StyleFunc) {
	if s == "" {
		return
	}
	if p.line == 0 {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			return
		}
		if pad := p.opts.IndentSize * depth; pad > 0 {
			p.write(strings.Repeat(" ", pad))
			p.line += pad
		}
	}
	p.line += len(s)
	if p.opts.Color && style != nil {
		s = style(s)
	}
	p.write(s)
}

// emitAt resolves and writes one token at an explicit indentation depth.
// This is the single primitive all higher-level printing funnels through.
func (p *Printer) emitAt(tok Token, depth int, style StyleFunc) {
	if !tok.breakable {
		p.writeAt(tok.text, depth, style)
		return
	}
	if p.line+len(tok.text) > p.opts.BreakLimit {
		resolved := strings.TrimRight(tok.atBreak, " ")
		p.writeAt(resolved, depth, style)
		if p.line > 0 {
			p.newline()
		}
		return
	}
	p.writeAt(tok.text, depth, style)
}

// emit flushes any pending block openers, then emits one token at the
// current depth.
func (p *Printer) emit(tok Token, style StyleFunc) {
	p.flushOpens()
	p.emitAt(tok, p.blk.depth, style)
}

// flushOpens writes the opening tokens of blocks opened lazily, outermost
// first, each at its parent's depth.
func (p *Printer) flushOpens() {
	var chain []*block
	for b := p.blk; b != nil && b.pending; b = b.parent {
		chain = append(chain, b)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		b := chain[i]
		b.pending = false
		p.emitAt(Breakable(b.desc.Open, b.desc.OpenAtBreak), b.depth-1, p.opts.Styles.Punct)
	}
}

/* block stack */

// Open pushes a nested block. The opening token is held back until the
// first emission inside the block, so that a block closed while still empty
// collapses to its fixed empty form.
func (p *Printer) Open(desc BlockDesc) *Printer {
	p.blk = &block{desc: desc, parent: p.blk, depth: p.blk.depth + 1, pending: true}
	return p
}

// Close pops the current block. An empty block renders its fixed empty
// form; otherwise the optional trailing token and the closing token are
// emitted, the closer breaking onto its own line (at parent depth) when it
// would overflow.
func (p *Printer) Close() *Printer {
	b := p.blk
	if b.parent == nil {
		return p
	}
	p.blk = b.parent

	if b.pending {
		p.emit(Text(b.desc.Empty), p.opts.Styles.Punct)
		return p
	}
	if b.desc.Trail != "" {
		p.emitAt(Breakable(b.desc.Trail, b.desc.TrailAtBreak), p.blk.depth, p.opts.Styles.Punct)
	}
	if b.desc.Close != "" {
		if p.line > 0 && p.line+len(b.desc.Close) > p.opts.BreakLimit {
			p.newline()
		}
		p.emitAt(Text(b.desc.Close), p.blk.depth, p.opts.Styles.Punct)
	}
	return p
}

// StartItem begins one item of the current block: nothing for the first
// item, the separator (with a trailing space that vanishes on wrap) for
// every later one.
func (p *Printer) StartItem() *Printer {
	b := p.blk
	if !b.started {
		b.started = true
		return p
	}
	p.emit(Breakable(b.desc.Sep+" ", b.desc.SepAtBreak), p.opts.Styles.Punct)
	return p
}

// EndItem finishes one item, emitting the block's terminator if it has one.
// The terminator's line-end alternate is used when a break is due.
func (p *Printer) EndItem() *Printer {
	b := p.blk
	if b.desc.Term == "" {
		return p
	}
	p.emit(Breakable(b.desc.Term, b.desc.TermAtBreak), p.opts.Styles.Punct)
	return p
}

// Indent pushes an indent-only block.
func (p *Printer) Indent() *Printer {
	return p.Open(Group)
}

// Dedent pops the current block. It is Close under a name that reads better
// when paired with Indent.
func (p *Printer) Dedent() *Printer {
	return p.Close()
}

/* text operations */

// Print writes raw text as a plain token. It never triggers a break.
func (p *Printer) Print(s string) *Printer {
	p.emit(Text(s), nil)
	return p
}

// Printf writes printf-style formatted text. Supported verbs: %s (string),
// %d (integer), %f (float), %v (model, rendered with full cyclic-safe
// layout), and %% (literal percent). Unknown verbs and surplus placeholders
// are written literally.
func (p *Printer) Printf(format string, args ...interface{}) *Printer {
	next := 0
	arg := func() (interface{}, bool) {
		if next >= len(args) {
			return nil, false
		}
		a := args[next]
		next++
		return a, true
	}

	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			p.Print(plain.String())
			plain.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			plain.WriteByte(c)
			continue
		}
		i++
		verb := format[i]
		a, ok := (interface{})(nil), false
		if verb != '%' {
			a, ok = arg()
		}
		switch {
		case verb == '%':
			plain.WriteByte('%')
		case !ok:
			plain.WriteByte('%')
			plain.WriteByte(verb)
		case verb == 's':
			plain.WriteString(fmt.Sprint(a))
		case verb == 'd':
			plain.WriteString(fmt.Sprintf("%d", a))
		case verb == 'f':
			plain.WriteString(fmt.Sprintf("%g", a))
		case verb == 'v':
			flush()
			p.Model(a)
		default:
			plain.WriteByte('%')
			plain.WriteByte(verb)
		}
	}
	flush()
	return p
}

// Break emits a soft line break. Consecutive calls collapse to a single
// break; a line that holds no tokens yet is never broken again.
func (p *Printer) Break() *Printer {
	p.flushOpens()
	if p.line > 0 {
		p.newline()
	}
	return p
}

// Line prints s on a line of its own.
func (p *Printer) Line(s string) *Printer {
	p.Break()
	if s != "" {
		p.Print(s)
		p.Break()
	}
	return p
}

// Rule fills the remainder of the current line with ch, then breaks. With a
// zero break limit there is no width to fill and Rule degrades to a soft
// break.
func (p *Printer) Rule(ch rune) *Printer {
	p.flushOpens()
	start := p.line
	if start == 0 {
		start = p.opts.IndentSize * p.blk.depth
	}
	if n := p.opts.BreakLimit - start; n > 0 {
		p.emit(Text(strings.Repeat(string(ch), n)), p.opts.Styles.Punct)
	}
	p.Break()
	return p
}

/* small helpers shared with the dispatcher */

func formatInt(i int64) string   { return strconv.FormatInt(i, 10) }
func formatUint(u uint64) string { return strconv.FormatUint(u, 10) }

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep integral floats visibly floats, but leave Inf and NaN alone.
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
