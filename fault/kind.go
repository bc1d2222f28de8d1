package fault

// Kind identifies a specific failure condition.
// Kinds are string-based for debuggability and natural JSON serialization.
//
// The kind space is flat: there is no hierarchy and no subsumption between
// kinds. Two distinct kinds are siblings, and handling code matches kinds
// exactly. Operations declare the kinds they can produce as part of their
// contract, so kind constants live in the packages that own the operations,
// not here.
type Kind string

// KindUnknown identifies an unclassified failure. It is the adoption
// fallback used when a plain error enters the fault world via From.
const KindUnknown Kind = "UNKNOWN"
