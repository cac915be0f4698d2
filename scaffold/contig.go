package scaffold

// Contig is one draft-assembly sequence being extended. Seq grows
// monotonically: after any number of iterations its length equals the
// initial length plus LeftExt plus RightExt.
type Contig struct {
	Name string
	Seq  string
	// LeftExt and RightExt accumulate the bases synthesized onto each end.
	LeftExt  int
	RightExt int
}
