/*
Package nbt reads and writes NBT, the hierarchical named-tag format, in
both its compact binary encoding and its stringified textual form (SNBT).

The package converts between three representations of the same tree-shaped
data: an in-memory tag tree, a binary byte stream, and SNBT text. The tag
tree is the pivot; the two codecs are independent of each other.

1. Tag Trees

A tree is assembled from concrete tag variants (Byte, Short, Int, Long,
Float, Double, String, the primitive array tags, List and Compound), either
directly or by one decode pass:

	root := nbt.NewCompound("")
	root.Put(nbt.NewString("name", "Steve"))
	root.Put(nbt.NewShort("health", 20))
	root.Put(nbt.NewDoubleArray("pos", []float64{1, 64, 1}))

Compounds preserve insertion order; lists are homogeneous and reject
elements of a second variant.

2. Binary and Stringified Codecs

ReadTag and WriteTag handle the binary encoding; Parse, ParseReader,
Stringify and StringifyTo handle SNBT:

	tag, err := nbt.Parse([]byte(`{name: "Steve", health: 20s}`))
	if err != nil {
		// handle error
	}
	out, err := nbt.Stringify(tag, nbt.Pretty())

The file-level helpers (ReadFile, WriteFile, ParseFile, StringifyFile)
additionally require the root tag to be a Compound.

3. Mapping Go Values

Marshal and Unmarshal convert between Go values and tag trees with
encoding/json-style struct tags (`nbt:"name,omitempty"`), for callers who
prefer typed structs over tag-tree plumbing.

The codec is a pure, single-threaded transform: no compression, no partial
trees, no internal locking. Distinct goroutines may decode or encode
concurrently as long as each uses its own streams and trees.
*/
package nbt
