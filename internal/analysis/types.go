// Package analysis holds the structural metadata captured from a target
// process: console button registrations, engine interface pointers, named
// module offsets, and schema-system class/enum layouts. The capture itself
// runs elsewhere; the types here are the snapshot the output stage renders.
package analysis

// Button is a registered console button with the address of its state.
type Button struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

// Interface is an exported engine interface and the address of its
// instantiation function.
type Interface struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

// Offset is a named displacement from its module's base address.
type Offset struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

// ClassField is a field of a schema class and its offset within the class.
type ClassField struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
	Type  string `json:"type,omitempty"`
}

// Class is a schema class layout. Parent is empty for root classes.
type Class struct {
	Name   string       `json:"name"`
	Parent string       `json:"parent,omitempty"`
	Fields []ClassField `json:"fields"`
}

// EnumMember is a single enumerator of a schema enum.
type EnumMember struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Enum is a schema enum layout. Size is the underlying integer width in
// bytes (1, 2, 4 or 8).
type Enum struct {
	Name    string       `json:"name"`
	Size    int          `json:"size"`
	Members []EnumMember `json:"members"`
}

// ModuleSchema groups the schema classes and enums declared by one module.
type ModuleSchema struct {
	Classes []Class `json:"classes"`
	Enums   []Enum  `json:"enums"`
}

// The three per-module collections, keyed by module file name (e.g.
// "libclient.so"). Key uniqueness and insertion order are invariants the
// encoders rely on for reproducible output.
type (
	InterfaceMap = OrderedMap[[]Interface]
	OffsetMap    = OrderedMap[[]Offset]
	SchemaMap    = OrderedMap[ModuleSchema]
)
