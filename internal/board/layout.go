package board

import (
	"github.com/Makepad-fr/dropboard/internal/dnd"
	"github.com/Makepad-fr/dropboard/internal/model"
)

// Screen geometry. Hit testing and rendering both read from computeLayout,
// so these must match what View draws.
const (
	headerHeight  = 2 // summary line + blank
	footerHeight  = 2 // status line + help
	promptHeight  = 4 // bordered title + input
	zoneGap       = 1
	zoneHeading   = 3 // title, hint, blank
	cardHeight    = 3
	minZoneWidth  = 12
	minZoneHeight = 8
)

type cardBox struct {
	item model.Item
	rect dnd.Rect
}

type zoneBox struct {
	zone   Zone
	rect   dnd.Rect
	cards  []cardBox
	hidden int // items that did not fit
}

func computeLayout(width, height, footer int, zones []Zone) []zoneBox {
	n := len(zones)
	if n == 0 {
		return nil
	}
	zw := (width - zoneGap*(n-1)) / n
	if zw < minZoneWidth {
		zw = minZoneWidth
	}
	zh := height - headerHeight - footer
	if zh < minZoneHeight {
		zh = minZoneHeight
	}
	capacity := (zh - 2 - zoneHeading) / cardHeight

	out := make([]zoneBox, 0, n)
	for i, z := range zones {
		b := zoneBox{
			zone: z,
			rect: dnd.Rect{X: i * (zw + zoneGap), Y: headerHeight, W: zw, H: zh},
		}
		items := z.Items()
		if len(items) > capacity {
			// one card slot goes to the "+N more" line
			keep := max(capacity-1, 0)
			b.hidden = len(items) - keep
			items = items[:keep]
		}
		top := b.rect.Y + 1 + zoneHeading
		for j, it := range items {
			b.cards = append(b.cards, cardBox{
				item: it,
				rect: dnd.Rect{X: b.rect.X + 2, Y: top + j*cardHeight, W: zw - 4, H: cardHeight},
			})
		}
		out = append(out, b)
	}
	return out
}
