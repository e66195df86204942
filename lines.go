package flex

// flexLine is one row/column worth of flex items plus its own
// computed cross size (filled in during cross-axis distribution).
type flexLine struct {
	items     []*flexItem
	crossSize float64
	// firstBaseline is the line's baseline position, in cross-axis
	// coordinates relative to the container's content box.
	firstBaseline    float64
	hasFirstBaseline bool
}

// partitionLines splits items into flex lines: one line for nowrap,
// otherwise a greedy accumulation that closes a line before an item
// would overflow M, reversing the sequence for wrap-reverse. Items
// must already be in `order`-then-document-order.
func partitionLines(items []*flexItem, wrap FlexWrap, mainGap, M float64) []*flexLine {
	if wrap == NoWrap || len(items) == 0 {
		return []*flexLine{{items: items}}
	}

	var lines []*flexLine
	var cur []*flexItem
	var running float64

	for _, it := range items {
		total := it.mainMarginStart + it.baseSize + it.mainMarginEnd
		if len(cur) == 0 {
			cur = append(cur, it)
			running = total
			continue
		}
		next := running + mainGap + total
		if next <= M {
			cur = append(cur, it)
			running = next
			continue
		}
		lines = append(lines, &flexLine{items: cur})
		cur = []*flexItem{it}
		running = total
	}
	if len(cur) > 0 {
		lines = append(lines, &flexLine{items: cur})
	}

	if wrap == WrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return lines
}
