// Package document opens and saves the XML and HTML files markbind
// rewrites, choosing the host tree by format.
package document

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/dom/htmldom"
	"github.com/arthur-debert/markbind/pkg/dom/xmldom"
	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/arthur-debert/markbind/pkg/logging"
)

// Format names a document syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatXML  Format = "xml"
	FormatHTML Format = "html"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "xml":
		return FormatXML, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown document format %q", s)
	}
}

// Detect resolves FormatAuto from a file name. .html and .htm are HTML,
// everything else is XML.
func Detect(path string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatXML
	}
}

// Tree is what both host trees provide.
type Tree interface {
	dom.Document
	io.WriterTo
}

// File is a parsed document.
type File struct {
	Path   string
	Format Format
	Tree   Tree
}

// Parse reads a document of the given (resolved) format from r.
func Parse(r io.Reader, f Format) (*File, error) {
	var (
		tree Tree
		err  error
	)
	switch f {
	case FormatHTML:
		tree, err = htmldom.Parse(r)
	case FormatXML:
		tree, err = xmldom.Parse(r)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "format %q must be resolved before parsing", f)
	}
	if err != nil {
		return nil, err
	}
	return &File{Format: f, Tree: tree}, nil
}

// Open reads and parses the file at path.
func Open(path string, f Format) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentParse, "failed to open %s", path).
			WithDetail("path", path)
	}
	defer fh.Close()

	file, err := Parse(fh, Detect(path, f))
	if err != nil {
		return nil, err
	}
	file.Path = path
	log := logging.GetLogger("document")
	log.Debug().Str("path", path).Str("format", string(file.Format)).Msg("Document opened")
	return file, nil
}

// Indent reindents XML documents. HTML is left alone.
func (f *File) Indent(spaces int) {
	if spaces <= 0 {
		return
	}
	if x, ok := f.Tree.(*xmldom.Document); ok {
		x.Indent(spaces)
	}
}

// WriteTo serializes the document.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	return f.Tree.WriteTo(w)
}

// Save writes the document to path, replacing it atomically.
func (f *File) Save(path string) error {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".markbind-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrDocumentWrite, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrDocumentWrite, "failed to write %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrDocumentWrite, "failed to write %s", path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrDocumentWrite, "failed to set permissions on %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrDocumentWrite, "failed to replace %s", path)
	}
	log := logging.GetLogger("document")
	log.Debug().Str("path", path).Int("bytes", buf.Len()).Msg("Document saved")
	return nil
}
