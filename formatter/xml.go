package formatter

import (
	"strconv"
	"strings"

	"github.com/neildunlop/marker-tracking/tracking"
)

// BuildXML serializes a snapshot response to XML
func (rb *responseBuilder) BuildXML(res *SnapshotResponse) []byte {
	var b strings.Builder
	b.WriteString("<MarkerSnapshot>")
	if res.ResponseTimestamp != "" {
		b.WriteString("<ResponseTimestamp>")
		b.WriteString(xmlEscape(res.ResponseTimestamp))
		b.WriteString("</ResponseTimestamp>")
	}
	if res.ProducerRef != "" {
		b.WriteString("<ProducerRef>")
		b.WriteString(xmlEscape(res.ProducerRef))
		b.WriteString("</ProducerRef>")
	}
	writeViewportXML(&b, res)
	b.WriteString("<Markers>")
	for _, m := range res.Markers {
		writeMarkerXML(&b, m)
	}
	b.WriteString("</Markers>")
	b.WriteString("</MarkerSnapshot>")
	return []byte(b.String())
}

func writeViewportXML(b *strings.Builder, res *SnapshotResponse) {
	vp := res.Viewport
	b.WriteString("<Viewport>")
	writeFloatXML(b, "CenterLat", vp.CenterLat)
	writeFloatXML(b, "CenterLon", vp.CenterLon)
	writeFloatXML(b, "Zoom", vp.Zoom)
	writeFloatXML(b, "WidthPx", vp.WidthPx)
	writeFloatXML(b, "HeightPx", vp.HeightPx)
	b.WriteString("</Viewport>")
}

func writeMarkerXML(b *strings.Builder, m tracking.EntitySnapshot) {
	b.WriteString("<Marker>")
	b.WriteString("<MarkerRef>")
	b.WriteString(xmlEscape(m.ID))
	b.WriteString("</MarkerRef>")
	if m.Title != "" {
		b.WriteString("<Title>")
		b.WriteString(xmlEscape(m.Title))
		b.WriteString("</Title>")
	}
	if m.Category != "" {
		b.WriteString("<Category>")
		b.WriteString(xmlEscape(m.Category))
		b.WriteString("</Category>")
	}
	b.WriteString("<Liveness>")
	b.WriteString(xmlEscape(string(m.Liveness)))
	b.WriteString("</Liveness>")
	writeFloatXML(b, "Lat", m.Lat)
	writeFloatXML(b, "Lon", m.Lon)
	writeFloatXML(b, "HeadingDegrees", m.HeadingDegrees)
	// Screen coordinates are omitted entirely when the marker is outside
	// the viewport buffer.
	if m.ScreenX != nil && m.ScreenY != nil {
		writeFloatXML(b, "ScreenX", *m.ScreenX)
		writeFloatXML(b, "ScreenY", *m.ScreenY)
	}
	if len(m.Trail) > 0 {
		b.WriteString("<Trail>")
		for _, p := range m.Trail {
			b.WriteString("<Point>")
			writeFloatXML(b, "X", p.X)
			writeFloatXML(b, "Y", p.Y)
			writeFloatXML(b, "Opacity", p.Opacity)
			b.WriteString("</Point>")
		}
		b.WriteString("</Trail>")
	}
	b.WriteString("</Marker>")
}

func writeFloatXML(b *strings.Builder, tag string, v float64) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
