package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`,
		"word/document.xml":   body,
	}
	for _, name := range []string{"[Content_Types].xml", "word/document.xml"} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(files[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Go </w:t></w:r><w:r><w:t>Engineer</w:t></w:r><w:r><w:tab/><w:t>2019</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtract_DOCX(t *testing.T) {
	got, err := New().Extract(context.Background(), buildDOCX(t, documentXML))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := "Jane Doe\nGo Engineer\t2019"
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtract_PlainText(t *testing.T) {
	got, err := New().Extract(context.Background(), []byte("  Seasoned gopher.\n"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "Seasoned gopher." {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtract_Unsupported(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	_, err := New().Extract(context.Background(), png)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Extract() error = %v, want ErrUnsupported", err)
	}
}

func TestExtract_ZipWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("readme.txt")
	w.Write([]byte("hi"))
	zw.Close()

	_, err := New().Extract(context.Background(), buf.Bytes())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Extract() error = %v, want ErrUnsupported", err)
	}
}

func TestExtract_BrokenPDF(t *testing.T) {
	if _, err := New().Extract(context.Background(), []byte("%PDF-1.4\ngarbage")); err == nil {
		t.Error("Extract() error = nil for a truncated pdf")
	}
}

func TestCollect_StopsOnVisitorError(t *testing.T) {
	boom := errors.New("boom")
	walk := func(_ context.Context, _ []byte, visit Visitor) error {
		if err := visit("a"); err != nil {
			return err
		}
		return boom
	}
	if _, err := Collect(context.Background(), nil, walk); !errors.Is(err, boom) {
		t.Errorf("Collect() error = %v, want boom", err)
	}
}

func TestCollect_Trims(t *testing.T) {
	walk := func(_ context.Context, _ []byte, visit Visitor) error {
		for _, f := range []string{"\n", " Resume", " text ", "\n"} {
			if err := visit(f); err != nil {
				return err
			}
		}
		return nil
	}
	got, err := Collect(context.Background(), nil, walk)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Resume text" {
		t.Errorf("Collect() = %q", got)
	}
}
