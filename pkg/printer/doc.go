// Package printer implements a streaming text-layout engine. It renders
// tree-shaped, possibly cyclic, in-memory values ("models") into readable,
// indented, width-wrapped text, writing output incrementally to any
// io.Writer.
//
// The engine is built from a few small parts that all emission funnels
// through:
//
//   - a line buffer tracking how many characters sit on the current line
//   - a stack of open blocks (object, array, parens, indent-only), each
//     carrying its own delimiter, separator, and terminator tokens
//   - an identity-keyed visited set that breaks reference cycles
//   - a token emitter that decides, per token, whether a line break is due
//
// Tokens come in two flavors: plain tokens never trigger a break, while
// breakable tokens carry a line-end alternate rendering that is used when
// the token would overflow the configured width (a trailing ", " collapses
// to "," at the end of a line, a ";" terminator disappears entirely).
//
// A Printer is a long-lived instance bound to one destination. Its
// operations are chainable and any sink failure sticks: subsequent writes
// become no-ops and the first error is reported by Err. A Printer is not
// safe for concurrent use; callers needing parallel printing use one
// instance per goroutine or serialize calls externally.
//
// Cycle handling: once a composite value has been entered during a
// top-level Model call, every later occurrence of the same value (by
// identity, not structural equality) prints a placeholder such as
// "@circular[object]". That includes repeated non-cyclic sharing of a value
// already printed in full. The visited set is cleared at the start of each
// top-level call, not per node.
package printer
