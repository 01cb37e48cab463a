package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestTap_PassesValueThrough(t *testing.T) {
	t.Parallel()

	var seen []int
	c := Then(Tap(New(func() int { return 4 }), func(v int) { seen = append(seen, v) }), func(v int) int { return v * 2 })

	got, err := c.Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 8 || len(seen) != 1 || seen[0] != 4 {
		t.Fatalf("expected 8 with tap seeing 4, got %d and %v", got, seen)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	onSuccess := func(_ context.Context, v int) string { return "val:" + strconv.Itoa(v) }
	onError := func(_ context.Context, err error) string { return "err:" + err.Error() }

	ok := Finally(ctx, NewTry1(strconv.Atoi, "5"), onSuccess, onError)
	if ok != "val:5" {
		t.Fatalf("expected val:5, got %q", ok)
	}

	bad := Finally(ctx, NewTry1(strconv.Atoi, "bad"), onSuccess, onError)
	var numErr *strconv.NumError
	if _, err := strconv.Atoi("bad"); !errors.As(err, &numErr) || bad != "err:"+err.Error() {
		t.Fatalf("unexpected failure mapping: %q", bad)
	}
}
