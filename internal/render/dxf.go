package render

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultDXFName is the stock artifact name for the CAD export.
const DefaultDXFName = "vicinity-map.dxf"

// WriteDXF renders the scene as a minimal R12 DXF document: LINE entities
// per segment, centered TEXT entities per label, on the named layers.
//
// The target CAD convention is Y-up, so every point is mirrored about the
// vertical midline of the visible geometry's bounding box and every angle
// negated. This happens strictly here, after placement, keeping the
// placer convention-agnostic. At this entity subset the format is plain
// group-code pairs, so they are written directly.
func WriteDXF(w io.Writer, sc Scene, st StyleSet) error {
	bw := bufio.NewWriter(w)
	midY := sc.MidY()
	my := func(y float64) float64 { return 2*midY - y }

	pair := func(code int, val string) {
		fmt.Fprintf(bw, "%d\n%s\n", code, val)
	}
	num := func(code int, v float64) {
		fmt.Fprintf(bw, "%d\n%.6f\n", code, v)
	}

	// header
	pair(0, "SECTION")
	pair(2, "HEADER")
	pair(9, "$ACADVER")
	pair(1, "AC1009")
	pair(0, "ENDSEC")

	// layer table
	pair(0, "SECTION")
	pair(2, "TABLES")
	pair(0, "TABLE")
	pair(2, "LAYER")
	layers := sc.layerSet(st)
	pair(70, fmt.Sprintf("%d", len(layers)))
	for _, l := range layers {
		pair(0, "LAYER")
		pair(2, l.Layer)
		pair(70, "0")
		pair(62, fmt.Sprintf("%d", l.Color))
		pair(6, "CONTINUOUS")
	}
	pair(0, "ENDTAB")
	pair(0, "ENDSEC")

	// entities
	pair(0, "SECTION")
	pair(2, "ENTITIES")
	for _, op := range sc.Lines {
		style := st.For(op.Group)
		for _, seg := range Expand(op) {
			pair(0, "LINE")
			pair(8, style.Layer)
			num(10, seg.From.X)
			num(20, my(seg.From.Y))
			num(30, 0)
			num(11, seg.To.X)
			num(21, my(seg.To.Y))
			num(31, 0)
		}
	}
	for _, t := range sc.Texts {
		pair(0, "TEXT")
		pair(8, st.Labels.Layer)
		num(10, t.At.X)
		num(20, my(t.At.Y))
		num(30, 0)
		num(40, t.Size)
		pair(1, t.Text)
		num(50, -t.Angle)
		// centered both ways; group 11/21 is the alignment point that
		// applies once 72/73 are set
		pair(72, "1")
		pair(73, "2")
		num(11, t.At.X)
		num(21, my(t.At.Y))
		num(31, 0)
	}
	pair(0, "ENDSEC")
	pair(0, "EOF")
	return bw.Flush()
}

// layerSet returns the distinct layers referenced by the scene's styles,
// keeping the StyleSet order.
func (sc Scene) layerSet(st StyleSet) []Style {
	var out []Style
	seen := map[string]bool{}
	for _, l := range st.Layers() {
		if l.Layer == "" || seen[l.Layer] {
			continue
		}
		seen[l.Layer] = true
		out = append(out, l)
	}
	return out
}
