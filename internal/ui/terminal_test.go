package ui

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.vtt")
	if err := os.WriteFile(path, []byte("\ufeffWEBVTT\r\n\r\n00:00:01 --> 00:00:02\r\nla\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	term := NewTerminalWith(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	text, source, err := term.ReadInput(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if source != path || text != "WEBVTT\n\n00:00:01 --> 00:00:02\nla\n" {
		t.Fatalf("got (%q, %q)", text, source)
	}

	if _, _, err := term.ReadInput(context.Background(), filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadInputStdin(t *testing.T) {
	for _, path := range []string{"-", ""} {
		term := NewTerminalWith(strings.NewReader("header\nbody"), &bytes.Buffer{}, &bytes.Buffer{})
		text, source, err := term.ReadInput(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadInput(%q): %v", path, err)
		}
		// un strings.Reader n'est pas un terminal : il est traité comme un pipe
		if source != SourceStdin || text != "header\nbody" {
			t.Fatalf("ReadInput(%q) = (%q, %q)", path, text, source)
		}
	}
}

func TestReadInputCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// un pipe jamais fermé bloquerait sans ctx
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	term := NewTerminalWith(r, &bytes.Buffer{}, &bytes.Buffer{})
	if _, _, err := term.ReadInput(ctx, "-"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v; want context.Canceled", err)
	}
}

func TestPrintGoesToErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	term := NewTerminalWith(strings.NewReader(""), &out, &errOut)
	term.PrintInfo(context.Background(), "info")
	term.PrintError(context.Background(), "boom")

	if out.Len() != 0 {
		t.Fatalf("stdout must stay clean, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "info") || !strings.Contains(errOut.String(), "boom") {
		t.Fatalf("errOut = %q", errOut.String())
	}
	if term.IsTerminal() {
		t.Fatal("a buffer is not a terminal")
	}
}

func TestReadInputRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("WEBVTT\r\n"))
	}))
	defer srv.Close()

	term := NewTerminalWith(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	text, source, err := term.ReadInput(context.Background(), srv.URL+"/song.vtt")
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if source != srv.URL+"/song.vtt" || text != "WEBVTT\n" {
		t.Fatalf("got (%q, %q)", text, source)
	}
}

func TestCopyToClipboard(t *testing.T) {
	term := NewTerminalWith(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}).(*terminalUI)
	var copied string
	term.writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	if err := term.CopyToClipboard(context.Background(), "[今日](きょう)は ✓"); err != nil {
		t.Fatalf("CopyToClipboard: %v", err)
	}
	if copied != "[今日](きょう)は ✓" {
		t.Fatalf("copied = %q", copied)
	}

	term.writeClipboard = func(string) error { return errors.New("pas de presse-papier") }
	if err := term.CopyToClipboard(context.Background(), "autre texte ✓"); err == nil {
		t.Fatal("expected error")
	}
}
