package flex

// resolveJustify maps the Box Alignment L3 keywords onto the flex
// keyword set justify-content actually distributes space with.
func resolveJustify(j Justify, av axisView) Justify {
	switch j {
	case JustifyStart, JustifyNormal:
		return JustifyFlexStart
	case JustifyEnd:
		return JustifyFlexEnd
	case JustifyLeft:
		// left/right behave as start when the main axis isn't the
		// inline (row) axis.
		if av.isMainAxisRow() && av.isMainAxisReversed() {
			return JustifyFlexEnd
		}
		return JustifyFlexStart
	case JustifyRight:
		if !av.isMainAxisRow() {
			return JustifyFlexStart
		}
		if av.isMainAxisReversed() {
			return JustifyFlexStart
		}
		return JustifyFlexEnd
	default:
		return j
	}
}

// positionMainAxis resolves justify-content, distributes auto main
// margins when present, otherwise applies the start-offset/spacing
// table, then mirrors the result when the main axis runs in reverse.
func positionMainAxis(line *flexLine, av axisView, n *Node, M, gap float64) {
	items := line.items
	count := len(items)
	if count == 0 {
		return
	}

	usedMain := 0.0
	autoMargins := 0
	for _, it := range items {
		usedMain += it.mainMarginStart + it.resolvedMain + it.mainMarginEnd
		if it.mainMarginAutoS {
			autoMargins++
		}
		if it.mainMarginAutoE {
			autoMargins++
		}
	}
	usedMain += gap * float64(count-1)
	freeSpace := M - usedMain

	var startOffset, spacing float64

	if autoMargins > 0 {
		autoFree := freeSpace
		if autoFree < 0 {
			autoFree = 0
		}
		per := autoFree / float64(autoMargins)
		for _, it := range items {
			if it.mainMarginAutoS {
				it.mainMarginStart = per
			}
			if it.mainMarginAutoE {
				it.mainMarginEnd = per
			}
		}
		startOffset, spacing = 0, 0
	} else {
		j := resolveJustify(n.justifyContent, av)
		switch j {
		case JustifyFlexStart:
			startOffset, spacing = 0, 0
		case JustifyFlexEnd:
			startOffset, spacing = freeSpace, 0
		case JustifyCenter:
			startOffset, spacing = freeSpace/2, 0
		case JustifySpaceBetween:
			if count > 1 {
				spacing = freeSpace / float64(count-1)
			}
		case JustifySpaceAround:
			spacing = freeSpace / float64(count)
			startOffset = spacing / 2
		case JustifySpaceEvenly:
			spacing = freeSpace / float64(count+1)
			startOffset = spacing
		}
	}

	cursor := startOffset
	for _, it := range items {
		it.mainPos = cursor + it.mainMarginStart
		cursor += it.mainMarginStart + it.resolvedMain + it.mainMarginEnd + spacing + gap
	}

	if av.isMainAxisReversed() {
		for _, it := range items {
			it.mainPos = M - it.mainPos - it.resolvedMain
		}
	}
}
