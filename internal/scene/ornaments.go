package scene

import (
	"fmt"
	"strings"
)

// Decorative ornaments carry no data; they only keep the scene from
// looking sterile. Each takes its instance index as an explicit parameter
// so two ornaments get distinct but related timings without any shared
// counter, keeping composition a pure function.

// lantern emits a hanging lantern whose glow pulses on a period derived
// from its index.
func lantern(sb *strings.Builder, index int, x, y float64) {
	dur := 3.0 + 0.7*float64(index)
	fmt.Fprintf(sb, `<g transform="translate(%.1f,%.1f)">`, x, y)
	fmt.Fprintf(sb, `<line x1="0" y1="-18" x2="0" y2="0" stroke="%s" stroke-width="1"/>`, InkSoft.Hex())
	fmt.Fprintf(sb, `<circle r="5" fill="%s">`, Lantern.Hex())
	fmt.Fprintf(sb, `<animate attributeName="opacity" values="1;0.55;1" dur="%.1fs" repeatCount="indefinite"/>`, dur)
	sb.WriteString(`</circle></g>`)
}

// cloud emits a drifting cloud; drift period and span grow with the index
// so no two clouds move in lockstep.
func cloud(sb *strings.Builder, index int, x, y float64) {
	dur := 26.0 + 7.0*float64(index)
	span := 30.0 + 10.0*float64(index)
	fmt.Fprintf(sb, `<g transform="translate(%.1f,%.1f)" fill="%s" opacity="0.8">`, x, y, Cloud.Hex())
	sb.WriteString(`<ellipse cx="0" cy="0" rx="22" ry="8"/>`)
	sb.WriteString(`<ellipse cx="14" cy="-5" rx="14" ry="6"/>`)
	fmt.Fprintf(sb, `<animateTransform attributeName="transform" type="translate" additive="sum" values="0,0;%.1f,0;0,0" dur="%.1fs" repeatCount="indefinite"/>`, span, dur)
	sb.WriteString(`</g>`)
}
