package seqkit

import "slices"

// The registry describes the public operation set for tooling that turns
// operations into standalone snippets: each operation's ordered parameter
// list, its return kind, and the other registry entries its implementation
// delegates to, so a snippet can pull in its transitive dependencies.

// ReturnKind tells what an operation hands back to its caller.
type ReturnKind string

const (
	ReturnScalar  ReturnKind = "scalar"
	ReturnSeq     ReturnKind = "sequence"
	ReturnSeqPair ReturnKind = "sequence-pair"
)

// ParamKind tells the role a parameter plays in an operation's contract.
type ParamKind string

const (
	ParamSeq         ParamKind = "sequence"
	ParamSeqVariadic ParamKind = "sequences"
	ParamIndex       ParamKind = "index"
	ParamCount       ParamKind = "count"
	ParamPredicate   ParamKind = "predicate"
	ParamKey         ParamKind = "key"
	ParamFunc        ParamKind = "func"
	ParamValue       ParamKind = "value"
	ParamDefault     ParamKind = "default"
)

// Param is one entry of an operation's ordered parameter list.
type Param struct {
	Name     string
	Kind     ParamKind
	Optional bool
}

// OpSpec describes a single public operation.
type OpSpec struct {
	Name   string
	Params []Param
	Return ReturnKind
	// Calls names the registry entries the operation's implementation
	// delegates to.
	Calls []string
}

// Operations returns the operation registry in a stable order.
func Operations() []OpSpec {
	return slices.Clone(registry)
}

// LookupOp finds a registry entry by operation name.
func LookupOp(name string) (OpSpec, bool) {
	for _, op := range registry {
		if op.Name == name {
			return op, true
		}
	}
	return OpSpec{}, false
}

var registry = []OpSpec{
	{
		Name:   "First",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "defaults", Kind: ParamDefault, Optional: true}},
		Return: ReturnScalar,
	},
	{
		Name:   "Last",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "defaults", Kind: ParamDefault, Optional: true}},
		Return: ReturnScalar,
	},
	{
		Name:   "Nth",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "n", Kind: ParamIndex}, {Name: "defaults", Kind: ParamDefault, Optional: true}},
		Return: ReturnScalar,
	},
	{
		Name:   "Head",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "n", Kind: ParamCount}},
		Return: ReturnSeq,
		Calls:  []string{"Tail"},
	},
	{
		Name:   "Tail",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "n", Kind: ParamCount}},
		Return: ReturnSeq,
		Calls:  []string{"Head"},
	},
	{
		Name:   "Reverse",
		Params: []Param{{Name: "s", Kind: ParamSeq}},
		Return: ReturnSeq,
	},
	{
		Name:   "FirstTrue",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "pred", Kind: ParamPredicate, Optional: true}, {Name: "defaults", Kind: ParamDefault, Optional: true}},
		Return: ReturnScalar,
	},
	{
		Name:   "FirstFalse",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "pred", Kind: ParamPredicate, Optional: true}, {Name: "defaults", Kind: ParamDefault, Optional: true}},
		Return: ReturnScalar,
	},
	{
		Name:   "LastTrue",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "pred", Kind: ParamPredicate, Optional: true}, {Name: "defaults", Kind: ParamDefault, Optional: true}},
		Return: ReturnScalar,
		Calls:  []string{"FirstTrue", "Reverse"},
	},
	{
		Name:   "LastFalse",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "pred", Kind: ParamPredicate, Optional: true}, {Name: "defaults", Kind: ParamDefault, Optional: true}},
		Return: ReturnScalar,
		Calls:  []string{"FirstFalse", "Reverse"},
	},
	{
		Name:   "Quantify",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "pred", Kind: ParamPredicate, Optional: true}},
		Return: ReturnScalar,
	},
	{
		Name:   "Partition",
		Params: []Param{{Name: "pred", Kind: ParamPredicate, Optional: true}, {Name: "s", Kind: ParamSeq}},
		Return: ReturnSeqPair,
	},
	{
		Name:   "UniqueEverSeen",
		Params: []Param{{Name: "s", Kind: ParamSeq}},
		Return: ReturnSeq,
		Calls:  []string{"UniqueEverSeenBy"},
	},
	{
		Name:   "UniqueEverSeenBy",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "key", Kind: ParamKey}},
		Return: ReturnSeq,
	},
	{
		Name:   "UniqueJustSeen",
		Params: []Param{{Name: "s", Kind: ParamSeq}},
		Return: ReturnSeq,
		Calls:  []string{"UniqueJustSeenBy"},
	},
	{
		Name:   "UniqueJustSeenBy",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "key", Kind: ParamKey}},
		Return: ReturnSeq,
	},
	{
		Name:   "RoundRobin",
		Params: []Param{{Name: "ss", Kind: ParamSeqVariadic}},
		Return: ReturnSeq,
	},
	{
		Name:   "Pairwise",
		Params: []Param{{Name: "s", Kind: ParamSeq}},
		Return: ReturnSeq,
	},
	{
		Name:   "NCycles",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "n", Kind: ParamCount}},
		Return: ReturnSeq,
	},
	{
		Name:   "RepeatFunc",
		Params: []Param{{Name: "fn", Kind: ParamFunc}, {Name: "n", Kind: ParamCount}},
		Return: ReturnSeq,
	},
	{
		Name:   "Prepend",
		Params: []Param{{Name: "value", Kind: ParamValue}, {Name: "s", Kind: ParamSeq}},
		Return: ReturnSeq,
	},
	{
		Name:   "Append",
		Params: []Param{{Name: "s", Kind: ParamSeq}, {Name: "value", Kind: ParamValue}},
		Return: ReturnSeq,
	},
	{
		Name:   "Length",
		Params: []Param{{Name: "s", Kind: ParamSeq}},
		Return: ReturnScalar,
	},
}
