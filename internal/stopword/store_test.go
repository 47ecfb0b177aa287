package stopword

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestSetAlgebra tests the pure Add/Remove operations.
func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	t.Run("add then remove restores original", func(t *testing.T) {
		t.Parallel()

		s := NewSet("기자", "뉴스")
		got := s.Add("속보", "단독").Remove("속보", "단독")

		if !reflect.DeepEqual(got, s) {
			t.Errorf("expected %v, got %v", s.Sorted(), got.Sorted())
		}
	})

	t.Run("add of present words is a no-op", func(t *testing.T) {
		t.Parallel()

		s := NewSet("기자", "뉴스")
		got := s.Add("기자")

		if !reflect.DeepEqual(got, s) {
			t.Errorf("expected %v, got %v", s.Sorted(), got.Sorted())
		}
	})

	t.Run("remove of absent word is a no-op", func(t *testing.T) {
		t.Parallel()

		s := NewSet("기자")
		got := s.Remove("없는말")

		if !reflect.DeepEqual(got, s) {
			t.Errorf("expected %v, got %v", s.Sorted(), got.Sorted())
		}
	})

	t.Run("receiver is never mutated", func(t *testing.T) {
		t.Parallel()

		s := NewSet("기자")
		_ = s.Add("속보")
		_ = s.Remove("기자")

		if !s.Contains("기자") || s.Contains("속보") {
			t.Errorf("receiver mutated: %v", s.Sorted())
		}
	})

	t.Run("sorted order", func(t *testing.T) {
		t.Parallel()

		got := NewSet("다", "가", "나").Sorted()
		want := []string{"가", "나", "다"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Sorted() = %v, want %v", got, want)
		}
	})
}

// TestStoreRoundTrip verifies load(save(S)) == S.
func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	st := NewStore(filepath.Join(t.TempDir(), "stopwords.json"))
	s := NewSet("기자", "뉴스", "연합뉴스", "오늘")

	if err := st.Save(s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := st.Load()
	if !reflect.DeepEqual(got, s) {
		t.Errorf("round trip mismatch: saved %v, loaded %v", s.Sorted(), got.Sorted())
	}
}

// TestStoreLoadDegradesGracefully verifies the silent-empty recovery paths.
func TestStoreLoadDegradesGracefully(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty set", func(t *testing.T) {
		t.Parallel()

		st := NewStore(filepath.Join(t.TempDir(), "absent.json"))
		if got := st.Load(); len(got) != 0 {
			t.Errorf("expected empty set, got %v", got.Sorted())
		}
	})

	t.Run("corrupt file yields empty set", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "stopwords.json")
		if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
			t.Fatal(err)
		}

		st := NewStore(path)
		if got := st.Load(); len(got) != 0 {
			t.Errorf("expected empty set, got %v", got.Sorted())
		}
	})
}

// TestStoreSaveFormat pins down the on-disk format: a sorted JSON array with
// non-Latin characters left unescaped.
func TestStoreSaveFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stopwords.json")
	st := NewStore(path)

	if err := st.Save(NewSet("뉴스", "기자")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	content := strings.TrimSpace(string(data))
	want := `["기자","뉴스"]`
	if content != want {
		t.Errorf("file content = %s, want %s", content, want)
	}
}

// TestStoreSaveOverwrites verifies Save fully replaces prior content rather
// than merging with it.
func TestStoreSaveOverwrites(t *testing.T) {
	t.Parallel()

	st := NewStore(filepath.Join(t.TempDir(), "stopwords.json"))

	if err := st.Save(NewSet("기자", "뉴스")); err != nil {
		t.Fatal(err)
	}
	if err := st.Save(NewSet("속보")); err != nil {
		t.Fatal(err)
	}

	got := st.Load()
	if len(got) != 1 || !got.Contains("속보") {
		t.Errorf("expected only 속보 after overwrite, got %v", got.Sorted())
	}
}

// TestStoreSaveCreatesDirectories verifies parent directories are created.
func TestStoreSaveCreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "stopwords.json")
	st := NewStore(path)

	if err := st.Save(NewSet("기자")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected stopword file to exist: %v", err)
	}
}

// TestStoreSaveLeavesNoTempFiles verifies the atomic write cleans up.
func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := NewStore(filepath.Join(dir, "stopwords.json"))

	if err := st.Save(NewSet("기자")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the stopword file, found %v", names)
	}
}
