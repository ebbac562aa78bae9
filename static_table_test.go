package hpack

import "testing"

func TestStaticTableKnownEntries(t *testing.T) {
	cases := []struct {
		index int
		want  Header
	}{
		{1, Header{":authority", ""}},
		{2, Header{":method", "GET"}},
		{4, Header{":path", "/"}},
		{8, Header{":status", "200"}},
		{61, Header{"www-authenticate", ""}},
	}

	for _, tc := range cases {
		h, ok := staticHeaderAt(tc.index)
		if !ok {
			t.Fatalf("index %d: not found", tc.index)
		}
		if h != tc.want {
			t.Fatalf("index %d: got %+v, want %+v", tc.index, h, tc.want)
		}
	}
}

func TestStaticTableOutOfRange(t *testing.T) {
	if _, ok := staticHeaderAt(0); ok {
		t.Fatal("index 0 should not resolve")
	}
	if _, ok := staticHeaderAt(62); ok {
		t.Fatal("index 62 should not resolve")
	}
}

func TestStaticIndexOfHeader(t *testing.T) {
	if idx := staticIndexOfHeader(Header{":method", "GET"}); idx != 2 {
		t.Fatalf("got %d, want 2", idx)
	}
	if idx := staticIndexOfHeader(Header{":method", "PATCH"}); idx != 0 {
		t.Fatalf("unexpected match for PATCH: %d", idx)
	}
}

func TestStaticIndexOfName(t *testing.T) {
	if idx := staticIndexOfName(":path"); idx != 4 {
		t.Fatalf("got %d, want 4 (first :path entry)", idx)
	}
	if idx := staticIndexOfName("not-a-real-header"); idx != 0 {
		t.Fatalf("unexpected match: %d", idx)
	}
}
