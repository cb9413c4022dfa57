package types

// Receipt records the outcome of one extrinsic within a block. A failed
// call keeps its error here instead of aborting the block.
type Receipt struct {
	Index  int
	Caller AccountID
	Call   CallType
	Err    error
}

// OK reports whether the extrinsic's call succeeded.
func (r Receipt) OK() bool { return r.Err == nil }
