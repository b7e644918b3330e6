package seqsvg

import (
	"bytes"
	"fmt"

	"oss.terrastruct.com/seqdiag/seqtarget"
)

type markerDef struct {
	id     string
	fill   bool
	stroke bool
	path   string
}

var markerDefs = map[seqtarget.LineMarker]markerDef{
	seqtarget.ArrowOpen: {
		id:     "lmao",
		stroke: true,
		path:   "M-12,-6 L0,0 L-12,6",
	},
	seqtarget.ArrowFull: {
		id:   "lmaf",
		fill: true,
		path: "M-12,-6 L0,0 L-12,6 Z",
	},
	seqtarget.CircleFull: {
		id:   "lmcf",
		fill: true,
		path: "M-6,0 A6,6 0 1 0 6,0 M-6,0 A6,6 0 1 1 6,0",
	},
	seqtarget.ArrowIntoCircleFull: {
		id:   "lmaicf",
		fill: true,
		path: "M-18,-6 L-6,0 L-18,6 Z M-6,0 A6,6 0 1 0 6,0 M-6,0 A6,6 0 1 1 6,0",
	},
}

// markerAttr references m, recording it for the defs. NoMarker returns "".
func (r *Renderer) markerAttr(attr string, m seqtarget.LineMarker) string {
	def, ok := markerDefs[m]
	if !ok {
		return ""
	}
	r.markers[m] = struct{}{}
	return fmt.Sprintf(` %s="url(#%s)"`, attr, def.id)
}

// writeMarkers defines the referenced markers, in LineMarker order.
func (r *Renderer) writeMarkers(buf *bytes.Buffer) {
	if len(r.markers) == 0 {
		return
	}
	buf.WriteString("<defs>\n")
	for _, m := range []seqtarget.LineMarker{
		seqtarget.ArrowOpen,
		seqtarget.ArrowFull,
		seqtarget.CircleFull,
		seqtarget.ArrowIntoCircleFull,
	} {
		if _, ok := r.markers[m]; !ok {
			continue
		}
		def := markerDefs[m]
		fill, stroke, strokeWidth := "none", "none", 0
		if def.fill {
			fill = r.fg
		}
		if def.stroke {
			stroke = r.fg
			strokeWidth = 2
		}
		fmt.Fprintf(buf, `<marker id="%s" viewBox="-18 -6 30 12" refX="0" refY="0" markerUnits="userSpaceOnUse" markerWidth="30" markerHeight="12" orient="auto">`, def.id)
		fmt.Fprintf(buf, `<path d="%s" fill="%s" stroke="%s" stroke-width="%d" /></marker>`, def.path, fill, stroke, strokeWidth)
		buf.WriteByte('\n')
	}
	buf.WriteString("</defs>\n")
}
