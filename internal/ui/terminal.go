package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/patrickprogramme/lyricruby/internal/clipboard"
	"github.com/patrickprogramme/lyricruby/internal/fetch"
)

type terminalUI struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	remote fetch.Client

	// remplaçables dans les tests
	readClipboard  func() (string, error)
	writeClipboard func(string) error
}

func NewTerminal() Interface {
	return NewTerminalWith(os.Stdin, os.Stdout, os.Stderr)
}

// NewTerminalWith construit un terminal sur des flux arbitraires.
func NewTerminalWith(in io.Reader, out, errOut io.Writer) Interface {
	return &terminalUI{
		in:             in,
		out:            out,
		errOut:         errOut,
		readClipboard:  clipboard.ReadAll,
		writeClipboard: clipboard.WriteAll,
	}
}

func (t *terminalUI) ReadInput(ctx context.Context, path string) (string, string, error) {
	switch {
	case path == "-":
		text, err := readAllContext(ctx, t.in)
		return text, SourceStdin, err
	case fetch.IsRemote(path):
		b, err := t.remote.Bytes(ctx, path)
		if err != nil {
			return "", path, fmt.Errorf("téléchargement du transcript : %w", err)
		}
		return clipboard.Normalize(string(b)), path, nil
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", path, fmt.Errorf("lecture du transcript %s : %w", path, err)
		}
		return clipboard.Normalize(string(b)), path, nil
	case !isTTY(t.in):
		text, err := readAllContext(ctx, t.in)
		return text, SourceStdin, err
	default:
		clip, err := t.readClipboard()
		if err != nil {
			return "", SourceClipboard, fmt.Errorf("lecture du presse-papier : %w", err)
		}
		t.PrintInfo(ctx, "Utilisation du transcript depuis le presse-papier.")
		return clip, SourceClipboard, nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, "❌ "+s)
}

func (t *terminalUI) CopyToClipboard(ctx context.Context, text string) error {
	if clipboard.Equals(text) {
		return nil
	}
	if err := t.writeClipboard(text); err != nil {
		return fmt.Errorf("copie dans le presse-papier : %w", err)
	}
	return nil
}

func (t *terminalUI) IsTerminal() bool {
	return isTTY(t.out)
}

// readAllContext lit r jusqu'à EOF ; ctx interrompt l'attente (la lecture
// elle-même continue en arrière-plan jusqu'à la fin du process).
func readAllContext(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		b   []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		b, err := io.ReadAll(r)
		done <- result{b, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("lecture de l'entrée standard : %w", res.err)
		}
		return clipboard.Normalize(string(res.b)), nil
	}
}

// isTTY : seul un *os.File peut être un terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
