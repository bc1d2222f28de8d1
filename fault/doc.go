// Package fault provides structured failure values.
//
// This package extends Go's standard error handling with flat kind
// discriminants, kind-specific detail payloads, a kind registry with retry
// traits, and JSON serialization. It maintains full compatibility with the
// standard library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Features
//
//   - Flat kind discriminants for exact-match categorization
//   - Kind-specific detail payloads for programmatic inspection
//   - Error wrapping that preserves the cause chain
//   - An open kind registry with summaries and retry traits
//   - YAML kind catalogs for out-of-band documentation
//   - JSON serialization for API responses
//
// # Design Principles
//
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Immutability (values are immutable once created)
//   - A flat kind space: no hierarchy, no subsumption, exact matches only
//   - Decentralized kinds: operations declare the kinds they produce
//
// # Kinds
//
// A Kind names one failure condition. The kind space is deliberately flat:
// there is no base kind, no inheritance, and no category that matches "all
// filesystem failures". Handling code matches kinds exactly, which keeps the
// set of conditions a caller handles explicit and reviewable.
//
// This package predeclares only KindUnknown, the adoption fallback. Every
// other kind belongs to the package whose operations produce it:
//
//	// In the package that owns the operation:
//	const KindDirectoryAlreadyExists fault.Kind = "DIRECTORY_ALREADY_EXISTS"
//
// # Quick Start
//
// Creating faults:
//
//	// Simple fault
//	err := fault.New(KindNotFound, "user not found")
//
//	// Formatted fault
//	err := fault.Newf(KindValidationFailure, "invalid age: %d", age)
//
// Wrapping errors:
//
//	data, err := util.ReadFile(fsys, path)
//	if err != nil {
//	    return fault.Wrap(err, KindNotFound, "failed to read data file")
//	}
//
// Attaching detail:
//
//	err := fault.New(KindValidationFailure, "payload rejected")
//	err = fault.WithDetail(err, "problems", problems)
//
// Inspecting:
//
//	switch fault.KindOf(err) {
//	case KindNotFound:
//	    // create it
//	case KindValidationFailure:
//	    // report the problems
//	}
//
// # Kind Registry
//
// The registry documents kinds: a short summary and whether the condition is
// retryable. Operation packages register their kinds at init time:
//
//	func init() {
//	    fault.Register(fault.Descriptor{
//	        Kind:      KindNotFound,
//	        Summary:   "requested resource does not exist",
//	        Retryable: false,
//	    })
//	}
//
// Retry decisions consult the registry, not the kind constant:
//
//	if fault.Retryable(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
//
// Catalogs can also be loaded from YAML with ReadCatalog, which is useful
// when kind documentation is maintained alongside service configuration.
//
// # Standard Library Compatibility
//
// Value implements the error interface and works with standard library error
// functions:
//
//	// errors.Is traverses the cause chain
//	if errors.Is(err, os.ErrNotExist) {
//	    // Handle missing file
//	}
//
//	// errors.As finds typed errors in the chain
//	var v fault.Value
//	if errors.As(err, &v) {
//	    kind := v.Kind()
//	}
//
// # Detail Payloads
//
// Detail carries the kind-specific payload named by an operation's contract,
// such as the list of validation problems or the occupied path. Detail is
// included in JSON serialization; the cause chain is not.
//
//	err := fault.New(KindValidationFailure, "payload rejected")
//	err = fault.WithDetailMap(err, map[string]interface{}{
//	    "problems": []string{"empty payload"},
//	    "limit":    1 << 20,
//	})
package fault
