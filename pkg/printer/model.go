package printer

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"
	"unicode"
)

// Cycle placeholders, keyed by the composite kind they stand in for. The
// exact text is part of the printed contract and must stay stable.
const (
	CircularArray  = "@circular[array]"
	CircularObject = "@circular[object]"
)

// AnonymousFun is printed for callable values with no usable name.
const AnonymousFun = "<fun>"

// Model prints one model value with full cyclic-safe recursive layout. At
// the top level the visited set is cleared first; recursive calls made from
// renderer callbacks share the walk's visited set, so shared and cyclic
// references print as placeholders.
func (p *Printer) Model(v interface{}) *Printer {
	if p.walkDepth == 0 {
		clear(p.visited)
	}
	p.walkDepth++
	p.printValue(reflect.ValueOf(v))
	p.walkDepth--
	return p
}

// enter consults and updates the visited set for a composite value. It
// returns the recorded placeholder and true when the value was seen before
// (the caller must print the placeholder and not recurse). Entries are
// identity-keyed and live until the end of the top-level call.
func (p *Printer) enter(rv reflect.Value, placeholder string) (string, bool) {
	key := rv.Pointer()
	if ph, ok := p.visited[key]; ok {
		return ph, true
	}
	p.visited[key] = placeholder
	return "", false
}

// pointerPlaceholder picks the cycle placeholder for a pointer from what it
// points at, so a cyclic *[]T reads as an array rather than an object.
func pointerPlaceholder(rv reflect.Value) string {
	switch rv.Type().Elem().Kind() {
	case reflect.Slice, reflect.Array:
		return CircularArray
	default:
		return CircularObject
	}
}

func (p *Printer) printValue(rv reflect.Value) {
	if !rv.IsValid() {
		p.emit(Text("nil"), p.opts.Styles.Keyword)
		return
	}
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			p.emit(Text("nil"), p.opts.Styles.Keyword)
			return
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			p.emit(Text("nil"), p.opts.Styles.Keyword)
			return
		}
		if ph, seen := p.enter(rv, pointerPlaceholder(rv)); seen {
			p.emit(Text(ph), p.opts.Styles.Circular)
			return
		}
		if p.dispatchKinded(rv) {
			return
		}
		p.printValue(rv.Elem())

	case reflect.Slice:
		if rv.IsNil() {
			p.emit(Text("nil"), p.opts.Styles.Keyword)
			return
		}
		if rv.Len() == 0 {
			p.emit(Text("[]"), p.opts.Styles.Punct)
			return
		}
		if ph, seen := p.enter(rv, CircularArray); seen {
			p.emit(Text(ph), p.opts.Styles.Circular)
			return
		}
		p.printArray(rv)

	case reflect.Array:
		// Arrays are values and carry no identity, so they cannot close
		// a cycle themselves.
		if rv.Len() == 0 {
			p.emit(Text("[]"), p.opts.Styles.Punct)
			return
		}
		p.printArray(rv)

	case reflect.Map:
		if rv.IsNil() {
			p.emit(Text("nil"), p.opts.Styles.Keyword)
			return
		}
		if ph, seen := p.enter(rv, CircularObject); seen {
			p.emit(Text(ph), p.opts.Styles.Circular)
			return
		}
		if p.dispatchKinded(rv) {
			return
		}
		if p.opts.Annotate && rv.Type().Name() != "" {
			p.emit(Text(rv.Type().Name()+" "), p.opts.Styles.Label)
		}
		if rv.Len() == 0 {
			p.emit(Text("{}"), p.opts.Styles.Punct)
			return
		}
		p.printMap(rv)

	case reflect.Struct:
		if p.dispatchKinded(rv) {
			return
		}
		p.printStruct(rv)

	case reflect.Func:
		if rv.IsNil() {
			p.emit(Text("nil"), p.opts.Styles.Keyword)
			return
		}
		p.emit(Text(funcName(rv)), p.opts.Styles.Keyword)

	case reflect.String:
		p.emit(Text(Quote(rv.String())), p.opts.Styles.String)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.emit(Text(formatInt(rv.Int())), p.opts.Styles.Number)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		p.emit(Text(formatUint(rv.Uint())), p.opts.Styles.Number)

	case reflect.Float32, reflect.Float64:
		p.emit(Text(formatFloat(rv.Float())), p.opts.Styles.Number)

	case reflect.Bool:
		if rv.Bool() {
			p.emit(Text("true"), p.opts.Styles.Keyword)
		} else {
			p.emit(Text("false"), p.opts.Styles.Keyword)
		}

	default:
		// Channels, complex numbers and anything else degrade to their
		// default textual conversion rather than erroring.
		p.emit(Text(fmt.Sprint(rv.Interface())), nil)
	}
}

// dispatchKinded routes a mapping-like value through the renderer registry
// when it advertises a registered kind. Reports whether it handled the
// value.
func (p *Printer) dispatchKinded(rv reflect.Value) bool {
	if p.opts.Raw || p.renderers == nil || !rv.CanInterface() {
		return false
	}
	v := rv.Interface()
	k, ok := v.(Kinded)
	if !ok {
		return false
	}
	render, err := p.renderers.Get(k.Kind())
	if err != nil {
		return false
	}
	render(p, v)
	return true
}

func (p *Printer) printArray(rv reflect.Value) {
	p.Open(Brackets)
	for i := 0; i < rv.Len(); i++ {
		p.StartItem()
		p.printValue(rv.Index(i))
		p.EndItem()
	}
	p.Close()
}

// mapEntry is one key of a generic map rendering, pre-formatted for stable
// sorting.
type mapEntry struct {
	label string // printed form for string keys, sort key otherwise
	bare  bool   // key qualifies as a bare identifier
	key   reflect.Value
}

func (p *Printer) printMap(rv reflect.Value) {
	entries := make([]mapEntry, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		k := it.Key()
		e := mapEntry{key: k}
		if k.Kind() == reflect.String {
			e.label = k.String()
			e.bare = isIdent(e.label)
		} else {
			e.label = fmt.Sprint(k.Interface())
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].label < entries[j].label })

	p.Open(Braces)
	for _, e := range entries {
		p.StartItem()
		p.printKey(e)
		p.Print(" = ")
		p.printValue(rv.MapIndex(e.key))
		p.EndItem()
	}
	p.Close()
}

func (p *Printer) printKey(e mapEntry) {
	switch {
	case e.key.Kind() != reflect.String:
		// Non-string keys render as a bracketed sub-model.
		p.emit(Text("["), p.opts.Styles.Punct)
		p.printValue(e.key)
		p.emit(Text("]"), p.opts.Styles.Punct)
	case e.bare:
		p.emit(Text(e.label), p.opts.Styles.Key)
	default:
		p.emit(Text(Quote(e.label)), p.opts.Styles.Key)
	}
}

func (p *Printer) printStruct(rv reflect.Value) {
	t := rv.Type()

	if p.opts.Annotate && t.Name() != "" {
		p.emit(Text(t.Name()+" "), p.opts.Styles.Label)
	}

	fields := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields = append(fields, i)
		}
	}
	if len(fields) == 0 {
		p.emit(Text("{}"), p.opts.Styles.Punct)
		return
	}

	p.Open(Braces)
	for _, i := range fields {
		p.StartItem()
		name := t.Field(i).Name
		if isIdent(name) {
			p.emit(Text(name), p.opts.Styles.Key)
		} else {
			p.emit(Text(Quote(name)), p.opts.Styles.Key)
		}
		p.Print(" = ")
		p.printValue(rv.Field(i))
		p.EndItem()
	}
	p.Close()
}

func funcName(rv reflect.Value) string {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return AnonymousFun
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	// Closures get synthetic funcN names from the runtime.
	if name == "" || strings.HasPrefix(name, "func") {
		return AnonymousFun
	}
	return name
}

// isIdent reports whether s can be printed as a bare identifier key.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	rs := []rune(s)
	if !(unicode.IsLetter(rs[0]) || rs[0] == '_') {
		return false
	}
	for _, r := range rs[1:] {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}

// Quote renders s as a double-quoted literal with the usual escapes.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
