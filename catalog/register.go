package catalog

import "github.com/jmgilman/fallible/fault"

func init() {
	d := fault.Descriptor{
		Kind:      KindCatalogInvalid,
		Summary:   "kind catalog failed to compile, validate, or decode",
		Retryable: false,
	}
	if err := fault.Register(d); err != nil {
		panic(err)
	}
}
