package vector_test

import (
	"testing"

	"github.com/sandflow/ttconv/persistent/vector"
)

func TestVectorPushAndGet(t *testing.T) {
	v := vector.Immutable[int]()
	for i := 0; i < 40; i++ {
		v = v.Push(i)
	}
	if v.Len() != 40 {
		t.Fatalf("expected length 40, got %d", v.Len())
	}
	for i := 0; i < 40; i++ {
		if got := v.Get(i); got != i {
			t.Errorf("Get(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestVectorImmutability(t *testing.T) {
	v0 := vector.Immutable[string]()
	v1 := v0.Push("a")
	v2 := v1.Push("b")
	if v1.Len() != 1 || v2.Len() != 2 {
		t.Fatalf("expected sharing not to mutate earlier incarnations, got v1.Len()=%d v2.Len()=%d", v1.Len(), v2.Len())
	}
	if v1.Get(0) != "a" || v2.Get(0) != "a" || v2.Get(1) != "b" {
		t.Fatalf("unexpected contents: v1=%v v2=%v", v1.Slice(), v2.Slice())
	}
}

func TestVectorSet(t *testing.T) {
	v := vector.Immutable[int]().Push(1).Push(2).Push(3)
	v2 := v.Set(1, 99)
	if v.Get(1) != 2 {
		t.Errorf("Set must not mutate the receiver, got v.Get(1) = %d", v.Get(1))
	}
	if v2.Get(1) != 99 {
		t.Errorf("expected v2.Get(1) = 99, got %d", v2.Get(1))
	}
}

func TestVectorPop(t *testing.T) {
	v := vector.Immutable[int]().Push(1).Push(2).Push(3)
	v2 := v.Pop()
	if v.Len() != 3 {
		t.Errorf("Pop must not mutate the receiver, got length %d", v.Len())
	}
	if v2.Len() != 2 || v2.Get(1) != 2 {
		t.Errorf("unexpected contents after Pop: %v", v2.Slice())
	}
}

func TestVectorLast(t *testing.T) {
	empty := vector.Immutable[int]()
	var ok bool
	switch m := empty.Last().Match(); m {
	case m.Nothing():
		ok = true
	case m.Just(new(int)):
	}
	if !ok {
		t.Error("expected Last() on an empty vector to be Nothing")
	}

	v := vector.Immutable[int]().Push(1).Push(2)
	var last int
	switch m := v.Last().Match(); m {
	case m.Just(&last):
	case m.Nothing():
		t.Fatal("expected Last() on a non-empty vector to be Just")
	}
	if last != 2 {
		t.Errorf("expected Last() = 2, got %d", last)
	}
}
