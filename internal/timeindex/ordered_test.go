package timeindex

import (
	"reflect"
	"testing"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)
	m.Set("zeta", 4)

	if got, want := m.Keys(), []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if v, ok := m.Get("zeta"); !ok || v != 4 {
		t.Fatalf("Get(zeta) = %d, %v", v, ok)
	}

	m.Delete("alpha")
	m.Delete("missing")
	if got, want := m.Keys(), []string{"zeta", "mid"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() after delete = %v, want %v", got, want)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}
