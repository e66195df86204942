package flex

// resolveAlign maps the Box Alignment L3 keywords used by
// align-items/align-self onto the flex keyword set the cross-axis
// positioner works with.
func resolveAlign(a Align) Align {
	switch a {
	case AlignStart, AlignSelfStart:
		return AlignFlexStart
	case AlignEnd, AlignSelfEnd:
		return AlignFlexEnd
	case AlignNormal:
		return AlignStretch
	default:
		return a
	}
}

// effectiveAlign resolves an item's alignSelf, falling back to the
// container's alignItems when alignSelf is `auto`.
func effectiveAlign(container, item *Node) (Align, Safety) {
	if item.alignSelf != AlignAuto {
		return resolveAlign(item.alignSelf), item.alignSelfSafety
	}
	return resolveAlign(container.alignItems), container.alignItemsSafety
}

// positionCrossAxis handles per-item cross-axis sizing and alignment
// within a line: baseline alignment, aspect-ratio re-transfer, min/max
// clamping and the `safe` overflow guard. Records the line's baseline
// when any item aligned to baseline.
func positionCrossAxis(line *flexLine, av axisView, container *Node, lineCrossStart, lineCrossSize float64, mainAvail, crossAvail float64) {
	type baselineEntry struct {
		it      *flexItem
		fromTop float64
	}
	var baselines []baselineEntry

	for _, it := range line.items {
		n := it.node
		align, safety := effectiveAlign(container, n)

		// Aspect-ratio re-transfer now that the main size is definite.
		crossSz := av.crossStyle(n)
		crossExplicit := crossSz.size.Kind == ValuePoint || crossSz.size.Kind == ValuePercent
		cross := it.hypCross
		if crossExplicit {
			cross, _ = resolve(crossSz.size, crossAvail)
		}
		ratioProvidesCross := false
		if n.hasAspectRatio && !crossExplicit {
			if av.mainIsRow {
				cross = it.resolvedMain / n.aspectRatio
			} else {
				cross = it.resolvedMain * n.aspectRatio
			}
			ratioProvidesCross = true
		}

		avail := lineCrossSize - it.crossMarginStart - it.crossMarginEnd

		switch {
		case it.crossMarginAutoS && it.crossMarginAutoE:
			cross = clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
			free := avail - cross
			if free < 0 {
				free = 0
			}
			it.crossMarginStart = free / 2
			it.crossMarginEnd = free / 2
			it.resolvedCross = cross
			it.crossPos = lineCrossStart + it.crossMarginStart

		case it.crossMarginAutoS:
			cross = clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
			free := avail - cross
			if free < 0 {
				free = 0
			}
			it.crossMarginStart = free
			it.resolvedCross = cross
			it.crossPos = lineCrossStart + it.crossMarginStart

		case it.crossMarginAutoE:
			cross = clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
			it.resolvedCross = cross
			it.crossPos = lineCrossStart + it.crossMarginStart

		case align == AlignStretch && !crossExplicit && !ratioProvidesCross:
			cross = avail
			if cross < 0 {
				cross = 0
			}
			cross = clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
			it.resolvedCross = cross
			it.crossPos = lineCrossStart + it.crossMarginStart

		case align == AlignFlexEnd:
			cross = clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
			it.resolvedCross = cross
			it.crossPos = lineCrossStart + lineCrossSize - cross - it.crossMarginEnd

		case align == AlignCenter:
			cross = clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
			it.resolvedCross = cross
			it.crossPos = lineCrossStart + it.crossMarginStart + (avail-cross)/2

		case align == AlignBaseline:
			cross = clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
			it.resolvedCross = cross
			w, h := av.composeWH(it.resolvedMain, cross)
			var b float64
			if n.baselineFunc != nil {
				b = n.baselineFunc(n, w, h)
				if b < 0 {
					b = 0
				}
				if b > h {
					b = h
				}
			} else {
				// Bottom of the item's content box.
				b = h - numeric(n.paddingBottom, 0) - numeric(n.borderBottom, 0)
				if b < 0 {
					b = 0
				}
			}
			fromTop := it.crossMarginStart + b
			baselines = append(baselines, baselineEntry{it: it, fromTop: fromTop})

		default: // flex-start
			cross = clampSize(cross, numeric(crossSz.min, crossAvail), maxOrInf(crossSz.max, crossAvail))
			it.resolvedCross = cross
			it.crossPos = lineCrossStart + it.crossMarginStart
		}

		if safety == Safe && it.resolvedCross > lineCrossSize {
			if it.crossPos < lineCrossStart {
				it.crossPos = lineCrossStart
			}
			if it.crossPos+it.resolvedCross > lineCrossStart+lineCrossSize {
				it.crossPos = lineCrossStart + lineCrossSize - it.resolvedCross
			}
		}
	}

	if len(baselines) > 0 {
		var maxB float64
		for _, be := range baselines {
			if be.fromTop > maxB {
				maxB = be.fromTop
			}
		}
		for _, be := range baselines {
			marginBoxTop := lineCrossStart + maxB - be.fromTop
			be.it.crossPos = marginBoxTop + be.it.crossMarginStart
		}
		line.firstBaseline = lineCrossStart + maxB
		line.hasFirstBaseline = true
	}
}

func maxOrInf(v Value, basis float64) float64 {
	if m, ok := resolve(v, basis); ok {
		return m
	}
	return posInf
}

// applyRelativeOffset nudges a finalised `relative` item by top/left
// (or the negated bottom/right) resolved against the parent's content
// main/cross sizes. The item's reserved space in the line is
// unaffected.
func applyRelativeOffset(n *Node, contentMain, contentCross float64, av axisView, mainPos, crossPos float64) (float64, float64) {
	if n.positionType != Relative {
		return mainPos, crossPos
	}

	mainDelta := relativeDelta(av.mainStyleOffsets(n), contentMain)
	crossDelta := relativeDelta(av.crossStyleOffsets(n), contentCross)
	return mainPos + mainDelta, crossPos + crossDelta
}

type offsetPair struct {
	start, end Value
}

func (av axisView) mainStyleOffsets(n *Node) offsetPair {
	if av.mainIsRow {
		return offsetPair{n.left, n.right}
	}
	return offsetPair{n.top, n.bottom}
}

func (av axisView) crossStyleOffsets(n *Node) offsetPair {
	if av.mainIsRow {
		return offsetPair{n.top, n.bottom}
	}
	return offsetPair{n.left, n.right}
}

func relativeDelta(p offsetPair, basis float64) float64 {
	if v, ok := resolve(p.start, basis); ok {
		return v
	}
	if v, ok := resolve(p.end, basis); ok {
		return -v
	}
	return 0
}
