package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "out.json")
	if err := WriteFileAtomic(dest, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil || string(got) != "{}" {
		t.Fatalf("content = %q, err = %v", got, err)
	}
	// aucun fichier temporaire ne doit rester
	entries, _ := os.ReadDir(filepath.Dir(dest))
	if len(entries) != 1 {
		t.Fatalf("expected a single file, got %d", len(entries))
	}
}

func TestSaveUniqueSuffixes(t *testing.T) {
	dir := t.TempDir()

	first, err := SaveUnique(dir, "song", "json", []byte("1"), false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := SaveUnique(dir, "song", ".json", []byte("2"), false)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(first) != "song.json" || filepath.Base(second) != "song_1.json" {
		t.Fatalf("got %s and %s", first, second)
	}

	third, err := SaveUnique(dir, "song", ".json", []byte("3"), true)
	if err != nil {
		t.Fatal(err)
	}
	if third != first {
		t.Fatalf("overwrite wrote %s; want %s", third, first)
	}
	if b, _ := os.ReadFile(first); string(b) != "3" {
		t.Fatalf("overwrite content = %q", b)
	}
}

func TestSaveUniqueRejectsEmptyBase(t *testing.T) {
	if _, err := SaveUnique(t.TempDir(), "", ".txt", nil, false); err == nil {
		t.Fatal("expected error")
	}
}

func TestIsDirEmpty(t *testing.T) {
	dir := t.TempDir()
	empty, err := IsDirEmpty(dir)
	if err != nil || !empty {
		t.Fatalf("empty=%v err=%v", empty, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "x"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if empty, _ := IsDirEmpty(dir); empty {
		t.Fatal("directory reported empty")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "untitled"},
		{"…", "…"},
		{"intro: verse 1", "Intro- verse 1"},
		{"a/b\\c", "A b c"},
		{"  song..  ", "Song"},
		{"夜に駆ける", "夜に駆ける"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := SanitizeFilename(tc.in); got != tc.want {
				t.Errorf("SanitizeFilename(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	if got := BaseName("/tmp/dir/song.lrc.txt"); got != "song.lrc" {
		t.Fatalf("BaseName = %q", got)
	}
}

func TestSanitizeFilenameKeepsRunesWhole(t *testing.T) {
	long := strings.Repeat("夜", 100) // 300 octets
	got := SanitizeFilename(long)
	if len(got) > maxNameBytes || !utf8.ValidString(got) {
		t.Fatalf("len=%d valid=%v", len(got), utf8.ValidString(got))
	}
	if got != strings.Repeat("夜", maxNameBytes/3) {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
