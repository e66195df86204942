package flex

// naturalCrossSize is an item's pre-stretch cross size candidate: its
// explicit style size if set, otherwise its aspect-ratio-derived size
// if the main size is already resolved and an aspect ratio is set,
// otherwise its hypothetical (measured) cross size, in every case
// clamped to the item's own cross min/max. Used to size each line;
// the cross-axis positioner derives the same candidate itself for
// items that don't stretch.
func naturalCrossSize(it *flexItem, av axisView, crossAvail float64) float64 {
	n := it.node
	crossSz := av.crossStyle(n)
	crossExplicit := crossSz.size.Kind == ValuePoint || crossSz.size.Kind == ValuePercent

	cross := it.hypCross
	if crossExplicit {
		cross, _ = resolve(crossSz.size, crossAvail)
	} else if n.hasAspectRatio {
		if av.mainIsRow {
			cross = it.resolvedMain / n.aspectRatio
		} else {
			cross = it.resolvedMain * n.aspectRatio
		}
	}
	return clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
}

// resolveAlignContent maps the Box Alignment L3 keywords onto the
// align-content keyword set, swapping start/end when the container's
// flex-wrap is wrap-reverse so that lines still flow from the
// visually reversed edge.
func resolveAlignContent(a AlignContentKeyword, wrapReverse bool) AlignContentKeyword {
	switch a {
	case ContentStart, ContentNormal:
		a = ContentFlexStart
	case ContentEnd:
		a = ContentFlexEnd
	}
	if !wrapReverse {
		return a
	}
	switch a {
	case ContentFlexStart:
		return ContentFlexEnd
	case ContentFlexEnd:
		return ContentFlexStart
	default:
		return a
	}
}

// distributeCrossAxis sizes each line from its items' natural cross
// sizes, applies align-content's start offset and inter-line spacing
// (or stretch, which grows every line), then positions each line's
// items.
func distributeCrossAxis(n *Node, lines []*flexLine, av axisView, availableCross float64, crossGap float64, mainAvail float64) {
	for _, line := range lines {
		var max float64
		for _, it := range line.items {
			natural := naturalCrossSize(it, av, availableCross)
			total := it.crossMarginStart + natural + it.crossMarginEnd
			if total > max {
				max = total
			}
		}
		line.crossSize = max
	}

	// A single-line nowrap container with a definite cross size uses
	// the full available cross size as the line size, so that
	// align-items: stretch fills the container.
	if n.flexWrap == NoWrap && len(lines) == 1 && isDefinite(availableCross) {
		lines[0].crossSize = availableCross
	}

	T := 0.0
	for i, line := range lines {
		T += line.crossSize
		if i > 0 {
			T += crossGap
		}
	}
	crossFree := availableCross - T
	if !isDefinite(crossFree) {
		crossFree = 0
	}

	wrapReverse := n.flexWrap == WrapReverse
	content := resolveAlignContent(n.alignContent, wrapReverse)

	var start, between float64
	L := len(lines)
	switch content {
	case ContentFlexStart:
		start, between = 0, 0
	case ContentFlexEnd:
		start, between = crossFree, 0
	case ContentCenter:
		start, between = crossFree/2, 0
	case ContentSpaceBetween:
		if L > 1 {
			between = crossFree / float64(L-1)
		}
	case ContentSpaceAround:
		between = crossFree / float64(L)
		start = between / 2
	case ContentSpaceEvenly:
		between = crossFree / float64(L+1)
		start = between
	case ContentStretch:
		if L > 0 && crossFree > 0 {
			extra := crossFree / float64(L)
			for _, line := range lines {
				line.crossSize += extra
			}
		}
	}

	cursor := start
	if wrapReverse && isDefinite(availableCross) && L == 1 {
		cursor = availableCross - lines[0].crossSize
	}
	for _, line := range lines {
		positionCrossAxis(line, av, n, cursor, line.crossSize, mainAvail, availableCross)
		cursor += line.crossSize + between + crossGap
	}
}
