package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/fault"
	"github.com/jmgilman/fallible/prototest"
)

const validCatalog = `
kinds: [
	{kind: "DIRECTORY_ALREADY_EXISTS", summary: "target path is already occupied"},
	{kind: "NETWORK_TIMEOUT", summary: "a network operation timed out", retryable: true}
]
`

// requireInvalid asserts the slot holds a KindCatalogInvalid fault with a
// non-empty problems detail.
func requireInvalid(t *testing.T, slot *fallible.Slot) {
	t.Helper()
	require.False(t, slot.IsEmpty())
	v := slot.Read()
	require.Equal(t, KindCatalogInvalid, v.Kind())
	problems, ok := v.Detail()["problems"].([]string)
	require.True(t, ok, "problems detail missing")
	assert.NotEmpty(t, problems)
}

func TestParse_Valid(t *testing.T) {
	slot := fallible.NewSlot()

	descriptors := Parse([]byte(validCatalog), slot)

	require.True(t, slot.IsEmpty())
	require.Len(t, descriptors, 2)

	assert.Equal(t, fault.Kind("DIRECTORY_ALREADY_EXISTS"), descriptors[0].Kind)
	assert.Equal(t, "target path is already occupied", descriptors[0].Summary)
	assert.False(t, descriptors[0].Retryable, "retryable should default to false")

	assert.Equal(t, fault.Kind("NETWORK_TIMEOUT"), descriptors[1].Kind)
	assert.True(t, descriptors[1].Retryable)
}

func TestParse_EmptyKindsList(t *testing.T) {
	slot := fallible.NewSlot()

	descriptors := Parse([]byte(`kinds: []`), slot)

	require.True(t, slot.IsEmpty())
	assert.Empty(t, descriptors)
}

func TestParse_RejectsLowercaseKind(t *testing.T) {
	slot := fallible.NewSlot()

	descriptors := Parse([]byte(`kinds: [{kind: "lowercase", summary: "x"}]`), slot)

	assert.Nil(t, descriptors)
	requireInvalid(t, slot)
}

func TestParse_RejectsEmptySummary(t *testing.T) {
	slot := fallible.NewSlot()

	Parse([]byte(`kinds: [{kind: "SOME_KIND", summary: ""}]`), slot)

	requireInvalid(t, slot)
}

func TestParse_RejectsUnknownField(t *testing.T) {
	slot := fallible.NewSlot()

	Parse([]byte(`kinds: [{kind: "SOME_KIND", summary: "x", severity: "high"}]`), slot)

	requireInvalid(t, slot)
}

func TestParse_RejectsMissingKinds(t *testing.T) {
	slot := fallible.NewSlot()

	Parse([]byte(`other: 1`), slot)

	requireInvalid(t, slot)
}

func TestParse_RejectsSyntaxError(t *testing.T) {
	slot := fallible.NewSlot()

	Parse([]byte(`kinds: [`), slot)

	requireInvalid(t, slot)
}

func TestParse_Raises(t *testing.T) {
	prototest.RequireRaise(t, KindCatalogInvalid, func() {
		Parse([]byte(`kinds: [`), nil)
	})
}

func TestLoad_RegistersDescriptors(t *testing.T) {
	registry := fault.NewRegistry()
	slot := fallible.NewSlot()

	n := Load(registry, []byte(validCatalog), slot)

	require.True(t, slot.IsEmpty())
	assert.Equal(t, 2, n)

	d, ok := registry.Lookup("NETWORK_TIMEOUT")
	require.True(t, ok)
	assert.True(t, d.Retryable)

	assert.True(t, registry.Retryable(fault.New("NETWORK_TIMEOUT", "gateway unreachable")))
	assert.False(t, registry.Retryable(fault.New("DIRECTORY_ALREADY_EXISTS", "occupied")))
}

func TestLoad_InvalidCatalogRegistersNothing(t *testing.T) {
	registry := fault.NewRegistry()
	slot := fallible.NewSlot()

	n := Load(registry, []byte(`kinds: [{kind: "bad kind", summary: "x"}]`), slot)

	assert.Equal(t, 0, n)
	requireInvalid(t, slot)
	assert.Empty(t, registry.Kinds())
}

func TestLoad_LaterEntryOverwrites(t *testing.T) {
	registry := fault.NewRegistry()
	src := `
kinds: [
	{kind: "NETWORK_TIMEOUT", summary: "first"},
	{kind: "NETWORK_TIMEOUT", summary: "second", retryable: true}
]
`

	n := Load(registry, []byte(src), nil)

	assert.Equal(t, 2, n)
	d, ok := registry.Lookup("NETWORK_TIMEOUT")
	require.True(t, ok)
	assert.Equal(t, "second", d.Summary)
	assert.True(t, d.Retryable)
}

func TestKindRegistered(t *testing.T) {
	d, ok := fault.Lookup(KindCatalogInvalid)
	require.True(t, ok)
	assert.NotEmpty(t, d.Summary)
	assert.False(t, d.Retryable)
}
