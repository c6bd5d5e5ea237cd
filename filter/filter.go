package filter

import (
	"fmt"

	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/fp"
)

// Transform is a CDM→CDM filter (spec §4.5): it takes ownership of doc,
// rewrites it in place, and returns it (or a replacement) on success.
// A Transform MUST preserve document invariants (spec §3.2) or return a
// *Error of KindFilter — never a structurally invalid document.
type Transform func(doc *cdm.Document) (*cdm.Document, error)

// ErrorKind is the single error kind filters raise, spec §7's
// filter-error: "a filter violated invariants; fatal."
type ErrorKind int

const (
	KindFilter ErrorKind = iota
)

func (k ErrorKind) String() string { return "filter-error" }

// Error is a filter-error (spec §7), always fatal to the conversion.
type Error struct {
	Filter  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("filter: %s: %s", e.Filter, e.Message)
}

// registry is the set of filters known by name, keyed the way the CLI's
// repeated `--filter NAME` flag selects them (spec §6.1).
var registry = map[string]Transform{}

// Register adds a named filter to the registry. Called from an `init()`
// in each filter's own file (lcd.go registers "lcd").
func Register(name string, t Transform) {
	registry[name] = t
}

// Lookup returns the named filter, if registered.
func Lookup(name string) (Transform, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns every registered filter's name.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// outcome adapts Transform's (doc, error) pair to the single-value
// shape fp.Compose folds over, short-circuiting on the first error.
type outcome struct {
	doc *cdm.Document
	err error
}

func adapt(t Transform) func(outcome) outcome {
	return func(o outcome) outcome {
		if o.err != nil {
			return o
		}
		doc, err := t(o.doc)
		return outcome{doc: doc, err: err}
	}
}

// Compose chains the named filters in order into a single Transform,
// folding the list with fp.Compose the way that package's own doc
// comment earmarks it for ("used to build up filter chains from
// individually named transforms"). An unknown name fails immediately
// with a *Error rather than silently skipping it.
func Compose(names []string) (Transform, error) {
	chain := func(o outcome) outcome { return o }
	for _, name := range names {
		t, ok := Lookup(name)
		if !ok {
			return nil, &Error{Filter: name, Message: "no such filter"}
		}
		chain = fp.Compose(chain, adapt(t))
	}
	return func(doc *cdm.Document) (*cdm.Document, error) {
		o := chain(outcome{doc: doc})
		return o.doc, o.err
	}, nil
}
