package document

import "testing"

func storeForTest() *ContentStore {
	return NewContentStore([]Segment{
		{Ordinal: 5, Title: "E", Source: SourceDelimited},
		{Ordinal: 2, Title: "B", Source: SourceDelimited},
		{Ordinal: 9, Title: "I", Source: SourceDelimited},
	})
}

func TestContentStoreSelectAll(t *testing.T) {
	store := storeForTest()

	got := store.Select(nil)
	if len(got) != 3 {
		t.Fatalf("len(Select(nil)) = %d, want 3", len(got))
	}

	got = store.Select([]int{})
	if len(got) != 3 {
		t.Fatalf("len(Select(empty)) = %d, want 3", len(got))
	}
}

func TestContentStoreSelectPreservesDocumentOrder(t *testing.T) {
	store := storeForTest()

	// Selection order must follow document order, not the requested order.
	got := store.Select([]int{9, 5})

	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Ordinal != 5 || got[1].Ordinal != 9 {
		t.Errorf("ordinals = [%d, %d], want [5, 9]", got[0].Ordinal, got[1].Ordinal)
	}
}

func TestContentStoreSelectNoMatch(t *testing.T) {
	store := storeForTest()

	got := store.Select([]int{1, 3})
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0", len(got))
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	segments := Extract("document.docx", DefaultMaxPages)
	if len(segments) != 0 {
		t.Errorf("len(segments) = %d, want 0 for unsupported extension", len(segments))
	}
}

func TestExtractMissingTextFile(t *testing.T) {
	segments := Extract("does-not-exist.txt", DefaultMaxPages)
	if len(segments) != 0 {
		t.Errorf("len(segments) = %d, want 0 for missing file", len(segments))
	}
}

func TestExtractMissingPDF(t *testing.T) {
	segments := Extract("does-not-exist.pdf", DefaultMaxPages)
	if len(segments) != 0 {
		t.Errorf("len(segments) = %d, want 0 for missing file", len(segments))
	}
}
