package components

import "context"

// Fetch tracks the single in-flight load of a screen. Begin cancels the
// previous load and hands out a new sequence number; a result is applied
// only when its sequence is still Current.
type Fetch struct {
	seq    uint64
	cancel context.CancelFunc
}

// Begin starts a new load derived from parent.
func (f *Fetch) Begin(parent context.Context) (context.Context, uint64) {
	f.Cancel()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	f.seq++
	f.cancel = cancel
	return ctx, f.seq
}

// Cancel aborts the in-flight load, if any, and invalidates its sequence.
func (f *Fetch) Cancel() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
		f.seq++
	}
}

// Done releases the context of a finished load.
func (f *Fetch) Done(seq uint64) {
	if seq == f.seq && f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// Current reports whether seq belongs to the load that is still expected.
func (f Fetch) Current(seq uint64) bool {
	return seq == f.seq && f.cancel != nil
}
