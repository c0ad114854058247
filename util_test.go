package chunkio

import (
	"errors"
	"testing"
)

func TestMust(t *testing.T) {
	if got := must(7, nil); got != 7 {
		t.Fatalf("must = %d, wanted 7", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	must(0, errors.New("boom"))
}

func TestEnsure(t *testing.T) {
	ensure(nil)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	ensure(errors.New("boom"))
}
