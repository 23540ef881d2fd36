package require

import (
	"errors"
	"fmt"
	"testing"
)

type fakeT struct {
	errors int
	failed bool
}

func (t *fakeT) Errorf(format string, args ...interface{}) {
	_ = fmt.Sprintf(format, args...)
	t.errors++
}

func (t *fakeT) FailNow() {
	t.failed = true
}

func TestPass(t *testing.T) {
	ft := &fakeT{}
	NoError(ft, nil)
	Error(ft, errors.New("x"))
	Equal(ft, "a", "a")
	Len(ft, []int{1, 2}, 2)
	True(ft, true)
	if ft.failed || ft.errors != 0 {
		t.Fatalf("expected no failures, got %d errors", ft.errors)
	}
}

func TestFailNow(t *testing.T) {
	checks := []func(ft *fakeT){
		func(ft *fakeT) { NoError(ft, errors.New("x")) },
		func(ft *fakeT) { Error(ft, nil) },
		func(ft *fakeT) { Equal(ft, "a", "b") },
		func(ft *fakeT) { Len(ft, []int{1}, 2) },
		func(ft *fakeT) { True(ft, false) },
	}
	for i, check := range checks {
		ft := &fakeT{}
		check(ft)
		if !ft.failed {
			t.Fatalf("check %d: expected FailNow to be called", i)
		}
	}
}
