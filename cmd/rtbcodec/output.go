package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/zeebo/blake3"
	"golang.org/x/term"

	"github.com/anirudhraja/openrtb/internal/config"
)

// printDocument writes a canonical document followed by a newline,
// indented and highlighted as configured.
func printDocument(w io.Writer, doc []byte, out config.OutputConfig) error {
	if out.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, "", "  "); err != nil {
			return fmt.Errorf("indent: %w", err)
		}
		doc = buf.Bytes()
	}

	if useColor(w, out.Color) {
		if err := quick.Highlight(w, string(doc), "json", "terminal256", out.Style); err != nil {
			return fmt.Errorf("highlight: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	if _, err := w.Write(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// digest fingerprints a canonical encoding. Member order and whitespace of
// the input do not change it, except inside ext objects, which are kept
// byte for byte.
func digest(doc []byte) string {
	sum := blake3.Sum256(doc)
	return "blake3:" + hex.EncodeToString(sum[:])
}
