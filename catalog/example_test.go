package catalog_test

import (
	"fmt"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/catalog"
	"github.com/jmgilman/fallible/fault"
)

func ExampleLoad() {
	registry := fault.NewRegistry()
	src := []byte(`
kinds: [
	{kind: "NETWORK_TIMEOUT", summary: "a network operation timed out", retryable: true}
]
`)

	slot := fallible.NewSlot(catalog.KindCatalogInvalid)
	n := catalog.Load(registry, src, slot)
	if !slot.IsEmpty() {
		fmt.Println("catalog rejected:", slot.Read().Message())
		return
	}

	d, _ := registry.Lookup("NETWORK_TIMEOUT")
	fmt.Printf("loaded=%d retryable=%v\n", n, d.Retryable)
	// Output: loaded=1 retryable=true
}

func ExampleParse_invalid() {
	slot := fallible.NewSlot()

	catalog.Parse([]byte(`kinds: [{kind: "not-a-kind", summary: "x"}]`), slot)

	fmt.Println(slot.Read().Kind())
	// Output: CATALOG_INVALID
}
