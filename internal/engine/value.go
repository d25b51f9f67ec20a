package engine

// ValKind represents value node kinds produced by the engine.
type ValKind int

const (
	ValInt ValKind = iota
	ValUint
	ValFloat
	ValBool
	ValText
	ValSeq
	ValRecord
)

// Val is the engine-side value tree. Leaves own durable copies of their data;
// nothing aliases the line source's transient buffers.
type Val struct {
	Kind   ValKind
	Int    int64
	Uint   uint64
	Float  float64
	Bool   bool
	Text   string
	Seq    []Val
	Fields []FieldVal
}

// FieldVal pairs a record field name with its parsed value.
type FieldVal struct {
	Name string
	Val  Val
}
