package render

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"vicimap/internal/feature"
)

// DefaultSVGName is the stock artifact name; uniqueness is the caller's
// concern.
const DefaultSVGName = "vicinity-map.svg"

// WriteSVG renders the scene as a self-contained SVG document of the
// given pixel size. The writer is buffered so an underlying I/O failure
// surfaces as the returned error instead of a half-written file going
// unnoticed.
func WriteSVG(w io.Writer, sc Scene, width, height int, st StyleSet) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	groups := []feature.Group{feature.GroupHighway, feature.GroupRailway, feature.GroupWaterway, feature.GroupOther}
	for _, g := range groups {
		style := st.For(g)
		first := true
		for _, op := range sc.Lines {
			if op.Group != g {
				continue
			}
			if first {
				canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none;stroke-linecap:round", style.Stroke, style.Width))
				first = false
			}
			for _, seg := range Expand(op) {
				canvas.Path(fmt.Sprintf("M%.2f %.2f L%.2f %.2f", seg.From.X, seg.From.Y, seg.To.X, seg.To.Y))
			}
		}
		if !first {
			canvas.Gend()
		}
	}

	for _, t := range sc.Texts {
		// raw element instead of canvas.Text: anchors keep float
		// precision and the rotation pivots on the anchor itself
		fmt.Fprintf(canvas.Writer,
			"<text x=\"%.2f\" y=\"%.2f\" font-size=\"%.2f\" fill=\"%s\" text-anchor=\"middle\" dominant-baseline=\"middle\" transform=\"rotate(%.2f, %.2f, %.2f)\">%s</text>\n",
			t.At.X, t.At.Y, t.Size, st.Labels.Stroke, t.Angle, t.At.X, t.At.Y, escapeXML(t.Text))
	}

	canvas.End()
	return bw.Flush()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
