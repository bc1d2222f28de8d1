// Package catalog loads fault kind catalogs written in CUE.
//
// A catalog declares the kinds a deployment knows about, with a summary and
// retry classification per kind. CUE gives the catalog a machine-checked
// schema: kind format, required fields, and the retryable default are
// enforced before anything reaches a registry.
//
// Parse and Load are fallible operations: supply a slot to inspect a
// rejected catalog locally, or pass nil to raise.
package catalog

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/fault"
)

// KindCatalogInvalid indicates a catalog document that failed to compile,
// violated the schema, or could not be decoded. Detail: "problems", one
// entry per violation.
const KindCatalogInvalid fault.Kind = "CATALOG_INVALID"

// catalogSchema constrains catalog documents. The kinds field is required;
// each descriptor needs an UPPER_SNAKE kind and a non-empty summary, and
// retryable defaults to false.
const catalogSchema = `
#Descriptor: {
	kind:      string & =~"^[A-Z][A-Z0-9_]*$"
	summary:   string & !=""
	retryable: bool | *false
}

kinds!: [...#Descriptor]
`

// document is the decode target for a validated catalog.
type document struct {
	Kinds []fault.Descriptor `json:"kinds"`
}

// Parse compiles src as CUE, validates it against the catalog schema, and
// returns its descriptors with defaults resolved.
//
// Returns nil as the no-result sentinel in capture mode.
//
// Kinds: KindCatalogInvalid (detail "problems").
func Parse(src []byte, dst *fallible.Slot) []fault.Descriptor {
	fallible.Arm(dst)

	cuectx := cuecontext.New()

	data := cuectx.CompileBytes(src, cue.Filename("catalog.cue"))
	if err := data.Err(); err != nil {
		fallible.Report(dst, invalidCatalog(err, "failed to compile catalog"))
		return nil
	}

	schema := cuectx.CompileString(catalogSchema, cue.Filename("catalog-schema.cue"))
	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		fallible.Report(dst, invalidCatalog(err, "catalog rejected by schema"))
		return nil
	}

	var doc document
	if err := unified.Decode(&doc); err != nil {
		fallible.Report(dst, invalidCatalog(err, "failed to decode catalog"))
		return nil
	}
	return doc.Kinds
}

// Load parses src and registers every descriptor into r, in document order,
// so a later entry for the same kind overwrites an earlier one. Parsing
// happens on this call's own channel, so KindCatalogInvalid is part of
// Load's contract.
//
// Returns the number of descriptors registered; 0 is the no-result sentinel
// in capture mode.
func Load(r *fault.Registry, src []byte, dst *fallible.Slot) int {
	fallible.Arm(dst)

	descriptors := Parse(src, dst)
	if dst != nil && !dst.IsEmpty() {
		return 0
	}

	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			fallible.Report(dst, fault.From(err))
			return 0
		}
	}
	return len(descriptors)
}

// invalidCatalog builds the fault for a rejected catalog, with one problems
// entry per CUE error.
func invalidCatalog(err error, message string) fault.Value {
	var problems []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	return fault.WithDetailMap(
		fault.Wrap(err, KindCatalogInvalid, message),
		map[string]interface{}{"problems": problems},
	)
}
