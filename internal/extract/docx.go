package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const docxBody = "word/document.xml"

// walkDOCX streams the runs of word/document.xml: every <w:t> becomes a
// fragment, paragraphs and breaks become newlines, tabs become tabs.
func walkDOCX(ctx context.Context, data []byte, visit Visitor) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open docx: %w", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == docxBody {
			body = f
			break
		}
	}
	if body == nil {
		return fmt.Errorf("%w (zip without %s)", ErrUnsupported, docxBody)
	}

	rc, err := body.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", docxBody, err)
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	inText := false
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", docxBody, err)
		}

		var frag string
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				frag = "\t"
			case "br", "cr":
				frag = "\n"
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				frag = "\n"
			}
		case xml.CharData:
			if inText {
				frag = string(t)
			}
		}
		if frag == "" {
			continue
		}
		if err := visit(frag); err != nil {
			return err
		}
	}
}
