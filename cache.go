package markertrack

import (
	"bytes"
	"strconv"
	"sync"

	"github.com/neildunlop/marker-tracking/formatter"
	"github.com/neildunlop/marker-tracking/geo"
)

// snapshotCache memoizes serialized snapshot responses per tick, format and
// viewport so a burst of renderers hitting the same tick costs one
// serialization. Entries from older ticks are discarded wholesale whenever a
// newer tick arrives.
type snapshotCache struct {
	bridge *Bridge

	mu            sync.Mutex
	tickMs        int64
	responseCache map[string][]byte
}

func newSnapshotCache(b *Bridge) *snapshotCache {
	return &snapshotCache{bridge: b, responseCache: map[string][]byte{}}
}

func (sc *snapshotCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (sc *snapshotCache) build(res *formatter.SnapshotResponse, format string) []byte {
	rb := formatter.NewResponseBuilder()
	if format == "xml" {
		return rb.BuildXML(res)
	}
	return rb.BuildJSON(res)
}

// GetSnapshotResponse returns the serialized snapshot for one tick, running
// the tick at most once per distinct (tick, viewport, format) key.
func (sc *snapshotCache) GetSnapshotResponse(nowMs int64, vp geo.Viewport, format string) []byte {
	key := sc.memoKey(
		format,
		strconv.FormatInt(nowMs, 10),
		strconv.FormatFloat(vp.CenterLat, 'f', -1, 64),
		strconv.FormatFloat(vp.CenterLon, 'f', -1, 64),
		strconv.FormatFloat(vp.Zoom, 'f', -1, 64),
		strconv.FormatFloat(vp.WidthPx, 'f', -1, 64),
		strconv.FormatFloat(vp.HeightPx, 'f', -1, 64),
	)

	sc.mu.Lock()
	if nowMs != sc.tickMs {
		sc.tickMs = nowMs
		sc.responseCache = map[string][]byte{}
	}
	if buf, ok := sc.responseCache[key]; ok {
		sc.mu.Unlock()
		return buf
	}
	sc.mu.Unlock()

	// The tick itself runs outside the cache lock; Registry.Tick carries
	// its own serialization.
	buf := sc.build(sc.bridge.RunTick(nowMs, vp), format)

	sc.mu.Lock()
	if nowMs == sc.tickMs {
		sc.responseCache[key] = buf
	}
	sc.mu.Unlock()
	return buf
}
