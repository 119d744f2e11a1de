package analysis

import (
	"encoding/json"
	"testing"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)

	keys := m.Keys()
	want := []string{"zebra", "apple", "mango"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("key %d: expected %q, got %q", i, k, keys[i])
		}
	}
}

func TestOrderedMapSetKeepsPositionOnOverwrite(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	if m.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", m.Len())
	}
	if m.Keys()[0] != "a" {
		t.Errorf("overwritten key moved: keys = %v", m.Keys())
	}
	if v, _ := m.Get("a"); v != 10 {
		t.Errorf("expected overwritten value 10, got %d", v)
	}
}

func TestOrderedMapJSONRoundTrip(t *testing.T) {
	m := NewOrderedMap[[]int]()
	m.Set("zebra", []int{1})
	m.Set("apple", []int{2, 3})

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"zebra":[1],"apple":[2,3]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	var back OrderedMap[[]int]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := back.Keys()
	if len(keys) != 2 || keys[0] != "zebra" || keys[1] != "apple" {
		t.Errorf("order lost after round trip: %v", keys)
	}
}

func TestOrderedMapNilReads(t *testing.T) {
	var m *OrderedMap[int]
	if m.Len() != 0 {
		t.Errorf("nil map Len = %d", m.Len())
	}
	if m.Keys() != nil {
		t.Errorf("nil map Keys = %v", m.Keys())
	}
	if _, ok := m.Get("x"); ok {
		t.Error("nil map Get reported a hit")
	}
}
