package hpack

import "testing"

func TestTableAddAndLookup(t *testing.T) {
	tbl := newTable(4096, StaticCount+1, true, "test")

	h := Header{"custom-key", "custom-header"}
	tbl.addHeader(h)

	if tbl.size != h.size() {
		t.Fatalf("size = %d, want %d", tbl.size, h.size())
	}

	idx := tbl.indexOfHeader(h)
	if idx != StaticCount+1 {
		t.Fatalf("index = %d, want %d", idx, StaticCount+1)
	}

	got, ok := tbl.headerAt(idx)
	if !ok || got != h {
		t.Fatalf("headerAt(%d) = %+v, %v", idx, got, ok)
	}
}

func TestTableNewestHasSmallestIndex(t *testing.T) {
	tbl := newTable(4096, StaticCount+1, true, "test")

	first := Header{"a", "1"}
	second := Header{"b", "2"}
	tbl.addHeader(first)
	tbl.addHeader(second)

	if idx := tbl.indexOfHeader(second); idx != StaticCount+1 {
		t.Fatalf("newest index = %d, want %d", idx, StaticCount+1)
	}
	if idx := tbl.indexOfHeader(first); idx != StaticCount+2 {
		t.Fatalf("older index = %d, want %d", idx, StaticCount+2)
	}
}

func TestTableEvictionUnderSmallSize(t *testing.T) {
	tbl := newTable(256, StaticCount+1, true, "test")

	headers := []Header{
		{"name-one", "value-one-is-reasonably-long"},
		{"name-two", "value-two-is-reasonably-long"},
		{"name-three", "value-three-is-reasonably-long"},
		{"name-four", "value-four-is-reasonably-long"},
	}

	for _, h := range headers {
		tbl.addHeader(h)
		if tbl.size > tbl.maxSize {
			t.Fatalf("size %d exceeds maxSize %d after adding %+v", tbl.size, tbl.maxSize, h)
		}
	}

	// The most recently added header must still be indexed.
	last := headers[len(headers)-1]
	if idx := tbl.indexOfHeader(last); idx == 0 {
		t.Fatalf("most recent header not indexed after eviction")
	}

	// The first header was evicted; its reverse-index entries must be gone.
	if idx := tbl.indexOfHeader(headers[0]); idx != 0 {
		t.Fatalf("evicted header still indexed at %d", idx)
	}
}

func TestTableEntryLargerThanMaxSizeIsDropped(t *testing.T) {
	tbl := newTable(16, StaticCount+1, true, "test")
	tbl.addHeader(Header{"name", "a value far too long for the table"})

	if len(tbl.entries) != 0 || tbl.size != 0 {
		t.Fatalf("table not empty after oversized insert: size=%d entries=%d", tbl.size, len(tbl.entries))
	}
}

func TestTableEvictionPreservesNewerDuplicate(t *testing.T) {
	// Two entries share a name; the older one is evicted by a third
	// insertion. Its eviction must not erase the name_index pointer
	// the newer duplicate owns.
	tbl := newTable(120, StaticCount+1, true, "test")

	older := Header{"dup-name", "older-value"}
	newer := Header{"dup-name", "newer-value"}

	tbl.addHeader(older)
	tbl.addHeader(newer)
	// Force eviction of the oldest entry (older) by adding a third
	// header that pushes total size past maxSize.
	tbl.addHeader(Header{"filler", "filler-value-to-force-eviction"})

	idx := tbl.indexOfName("dup-name")
	if idx == 0 {
		t.Fatal("name index lost after evicting shadowed duplicate")
	}
	h, ok := tbl.headerAt(idx)
	if !ok || h != newer {
		t.Fatalf("name index points at %+v, want %+v", h, newer)
	}
}

func TestTableHeaderAtOutOfRange(t *testing.T) {
	tbl := newTable(4096, StaticCount+1, true, "test")
	tbl.addHeader(Header{"a", "b"})

	if _, ok := tbl.headerAt(StaticCount); ok {
		t.Fatal("index below startIndex should not resolve")
	}
	if _, ok := tbl.headerAt(StaticCount + 2); ok {
		t.Fatal("index past endIndex should not resolve")
	}
}

func TestTableEmptyValueIndexedByNameOnly(t *testing.T) {
	tbl := newTable(4096, StaticCount+1, true, "test")
	h := Header{"x-empty", ""}
	tbl.addHeader(h)

	if idx := tbl.indexOfName("x-empty"); idx == 0 {
		t.Fatal("empty-value header not indexed by name")
	}
	if idx := tbl.indexOfHeader(h); idx != 0 {
		t.Fatal("empty-value header should not be indexed by full header")
	}
}
