// Package output writes the papers index document as XML.
package output

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/papers-index/internal/config"
	"github.com/Veraticus/papers-index/internal/model"
)

var declaration = xml.ProcInst{Target: "xml", Inst: []byte(`version='1.0' encoding='UTF-8'`)}

var newline = xml.CharData("\n")

// Encode writes doc as a UTF-8 XML document with every element on its own line.
func Encode(w io.Writer, doc model.Document) error {
	enc := xml.NewEncoder(w)

	if err := enc.EncodeToken(declaration); err != nil {
		return fmt.Errorf("failed to encode declaration: %w", err)
	}
	if err := enc.EncodeToken(newline); err != nil {
		return err
	}

	root := xml.StartElement{Name: xml.Name{Local: model.RootElement}}
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("failed to encode root: %w", err)
	}

	for _, e := range doc.Elements {
		start := xml.StartElement{Name: xml.Name{Local: e.Name}}
		tokens := []xml.Token{start, xml.CharData(e.Text), start.End(), newline}
		for _, tok := range tokens {
			if err := enc.EncodeToken(tok); err != nil {
				return fmt.Errorf("failed to encode %s: %w", e.Name, err)
			}
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("failed to encode root: %w", err)
	}
	return enc.Flush()
}

// WriteFile writes doc to target, which may be empty, a directory or a file
// path. If that fails the document is written to the default name in the
// working directory instead. It returns the absolute path written.
func WriteFile(target string, doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return "", err
	}

	path := config.ResolveOutputPath(target, config.DefaultOutputName)
	err := os.WriteFile(path, buf.Bytes(), 0o644) // #nosec G306 -- output is meant to be shared
	if err != nil && path != config.DefaultOutputName {
		slog.Warn("Cannot write output, trying default name instead",
			"path", path,
			"fallback", config.DefaultOutputName,
			"error", err)
		path = config.DefaultOutputName
		err = os.WriteFile(path, buf.Bytes(), 0o644) // #nosec G306
	}
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}
