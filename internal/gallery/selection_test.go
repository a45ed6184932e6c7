package gallery

import "testing"

func TestNeighborsEmptyList(t *testing.T) {
	if _, ok := Neighbors(nil, "x"); ok {
		t.Fatal("Neighbors(nil, x) ok = true, want false")
	}
	if _, ok := Neighbors([]string{}, "x"); ok {
		t.Fatal("Neighbors(empty, x) ok = true, want false")
	}
}

func TestNeighborsMissingItem(t *testing.T) {
	if _, ok := Neighbors([]string{"a", "b", "c"}, "z"); ok {
		t.Fatal("Neighbors ok = true for absent item, want false")
	}
}

func TestNeighborsSingleElement(t *testing.T) {
	sel, ok := Neighbors([]string{"only"}, "only")
	if !ok {
		t.Fatal("Neighbors ok = false, want true")
	}
	if sel.Selected != "only" || sel.Previous != "only" || sel.Next != "only" {
		t.Fatalf("single-element selection = %+v, want only/only/only", sel)
	}
}

func TestNeighborsTwoElements(t *testing.T) {
	items := []string{"a", "b"}
	for _, tc := range []struct{ selected, other string }{
		{"a", "b"},
		{"b", "a"},
	} {
		sel, ok := Neighbors(items, tc.selected)
		if !ok {
			t.Fatalf("Neighbors(%v, %q) ok = false", items, tc.selected)
		}
		if sel.Previous != tc.other || sel.Next != tc.other {
			t.Fatalf("Neighbors(%v, %q) = %+v, want prev=next=%q", items, tc.selected, sel, tc.other)
		}
	}
}

func TestNeighborsCircularAdjacency(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	n := len(items)
	for i, item := range items {
		sel, ok := Neighbors(items, item)
		if !ok {
			t.Fatalf("Neighbors(%v, %q) ok = false", items, item)
		}
		wantPrev := items[(i-1+n)%n]
		wantNext := items[(i+1)%n]
		if sel.Previous != wantPrev || sel.Next != wantNext {
			t.Fatalf("Neighbors(%v, %q) = %+v, want prev=%q next=%q",
				items, item, sel, wantPrev, wantNext)
		}
	}
}

func TestNeighborsResultsAreMembers(t *testing.T) {
	lists := [][]int{
		{1},
		{1, 2},
		{1, 2, 3},
		{4, 9, 2, 7, 5, 1},
	}
	for _, items := range lists {
		member := make(map[int]bool, len(items))
		for _, v := range items {
			member[v] = true
		}
		for _, x := range items {
			sel, ok := Neighbors(items, x)
			if !ok {
				t.Fatalf("Neighbors(%v, %d) ok = false", items, x)
			}
			if !member[sel.Previous] || !member[sel.Next] {
				t.Fatalf("Neighbors(%v, %d) = %+v, neighbors not members", items, x, sel)
			}
		}
	}
}

func TestNeighborsFirstMatchWinsWithDuplicates(t *testing.T) {
	// Duplicates are matched by first occurrence only; neighbors come
	// from that position.
	items := []string{"a", "b", "a", "c"}
	sel, ok := Neighbors(items, "a")
	if !ok {
		t.Fatal("Neighbors ok = false")
	}
	if sel.Previous != "c" || sel.Next != "b" {
		t.Fatalf("duplicate selection = %+v, want prev=c next=b (index 0 match)", sel)
	}
}
