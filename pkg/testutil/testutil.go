package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/markbind/pkg/dom/htmldom"
	"github.com/arthur-debert/markbind/pkg/dom/xmldom"
)

// CreateFile writes content to dir/name, creating parent directories,
// and returns the path.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// FileExists reports whether path exists and is a regular file.
func FileExists(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// AssertFileContent fails unless path holds exactly want.
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()
	if !FileExists(t, path) {
		t.Fatalf("%s does not exist", path)
	}
	if got := ReadFile(t, path); got != want {
		t.Errorf("%s content mismatch\nwant: %q\ngot:  %q", path, want, got)
	}
}

// AssertNoFile fails if anything exists at path.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("%s exists but should not", path)
	}
}

// ParseXML parses src into an etree-backed document or fails the test.
func ParseXML(t *testing.T, src string) *xmldom.Document {
	t.Helper()
	doc, err := xmldom.ParseString(src)
	if err != nil {
		t.Fatalf("parse xml: %v", err)
	}
	return doc
}

// ParseHTML parses src into an x/net/html-backed document or fails the test.
func ParseHTML(t *testing.T, src string) *htmldom.Document {
	t.Helper()
	doc, err := htmldom.ParseString(src)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}
