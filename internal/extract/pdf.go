package extract

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/ledongthuc/pdf"
)

// lineTolerance is how far (in points) the baseline may move before the
// next glyph run counts as a new line.
const lineTolerance = 1.0

func walkPDF(ctx context.Context, data []byte, visit Visitor) (err error) {
	// the pdf reader panics on some malformed content streams
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}

	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		var lastY float64
		for n, text := range page.Content().Text {
			if n > 0 && math.Abs(text.Y-lastY) > lineTolerance {
				if err := visit("\n"); err != nil {
					return err
				}
			}
			if err := visit(text.S); err != nil {
				return err
			}
			lastY = text.Y
		}
		if err := visit("\n"); err != nil {
			return err
		}
	}
	return nil
}
