package components

import (
	"context"
	"errors"
	"testing"
)

func TestFetchDiscardsStaleAndCancelled(t *testing.T) {
	t.Parallel()
	var f Fetch

	first, seq1 := f.Begin(context.Background())
	second, seq2 := f.Begin(context.Background())
	if !errors.Is(first.Err(), context.Canceled) {
		t.Fatal("Begin should cancel the previous load")
	}
	if f.Current(seq1) || !f.Current(seq2) {
		t.Fatal("only the latest sequence is current")
	}

	f.Cancel()
	if !errors.Is(second.Err(), context.Canceled) {
		t.Fatal("Cancel should cancel the in-flight load")
	}
	if f.Current(seq2) {
		t.Fatal("a cancelled load must not be applied")
	}
}

func TestFetchDoneReleasesContext(t *testing.T) {
	t.Parallel()
	var f Fetch
	ctx, seq := f.Begin(context.Background())
	if !f.Current(seq) {
		t.Fatal("fresh load should be current")
	}
	f.Done(seq)
	if ctx.Err() == nil {
		t.Fatal("Done should release the context")
	}
	f.Cancel()
	if _, next := f.Begin(context.Background()); next <= seq {
		t.Fatal("sequence must keep increasing")
	}
}
