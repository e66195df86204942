package flex

import "sort"

// CalculateLayout is the public layout entry: resolves the node's own
// size against (parentWidth, parentHeight), then lays out its entire
// subtree. It is a no-op when the node isn't dirty and was last laid
// out against the same parent size.
func (n *Node) CalculateLayout(parentWidth, parentHeight float64) {
	if !n.isDirty && n.hasLastParent && n.lastParentWidth == parentWidth && n.lastParentHeight == parentHeight {
		return
	}

	w, h := establishSize(n, parentWidth, parentHeight)
	runFlexLayout(n, w, h)

	n.lastParentWidth, n.lastParentHeight = parentWidth, parentHeight
	n.hasLastParent = true
}

// establishSize resolves a node's own border-box size against its
// parent's size: definite style values are used directly, `auto`
// falls back to the measured intrinsic size (computed lazily via
// ensureIntrinsicSize), and the aspect ratio is applied before the
// min/max clamp. This is used for the layout root; a non-root node's
// own size instead comes from the flex resolver run by its parent.
func establishSize(n *Node, parentWidth, parentHeight float64) (w, h float64) {
	w, hasW := resolve(n.width, parentWidth)
	h, hasH := resolve(n.height, parentHeight)
	w, h, hasW, hasH = aspectRatioTransfer(n, w, h, hasW, hasH)

	if !hasW || !hasH {
		iw, ih := n.ensureIntrinsicSize()
		iw, ih = applyAspectRatioToMeasured(n, iw, ih)
		if !hasW {
			w = iw
		}
		if !hasH {
			h = ih
		}
	}

	minW := numeric(n.minWidth, parentWidth)
	if n.minWidth.Kind == ValueAuto {
		minW = 0
	}
	minH := numeric(n.minHeight, parentHeight)
	if n.minHeight.Kind == ValueAuto {
		minH = 0
	}
	w = clampSize(w, minW, maxOrInf(n.maxWidth, parentWidth))
	h = clampSize(h, minH, maxOrInf(n.maxHeight, parentHeight))
	return w, h
}

// runFlexLayout lays out n's subtree assuming n's own border-box size
// is already (width, height), established by the caller, whether
// that's CalculateLayout (root), the flex resolver positioning a
// normal-flow child, or the absolute positioner. It runs the whole
// per-container pipeline: base sizes, line partition, flexible-length
// resolution, then main- and cross-axis positioning.
func runFlexLayout(n *Node, width, height float64) {
	n.layout.Width, n.layout.Height = width, height
	n.layout.Direction = n.direction
	n.isDirty = false

	if len(n.children) == 0 {
		return
	}

	contentLeft := numeric(n.paddingLeft, width) + numeric(n.borderLeft, width)
	contentTop := numeric(n.paddingTop, height) + numeric(n.borderTop, height)
	contentRight := numeric(n.paddingRight, width) + numeric(n.borderRight, width)
	contentBottom := numeric(n.paddingBottom, height) + numeric(n.borderBottom, height)
	contentW := width - contentLeft - contentRight
	contentH := height - contentTop - contentBottom
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}

	av := newAxisView(n)
	mainAvail := av.mainSize(contentW, contentH)
	crossAvail := av.crossSize(contentW, contentH)
	mainGap := av.mainGap(n, mainAvail)
	crossGap := av.crossGap(n, crossAvail)

	normalFlow := sortedNormalFlowChildren(n)

	items := make([]*flexItem, 0, len(normalFlow))
	for _, c := range normalFlow {
		item := computeFlexBase(c, av, mainAvail, crossAvail)
		items = append(items, &item)
	}

	lines := partitionLines(items, n.flexWrap, mainGap, mainAvail)
	for _, line := range lines {
		resolveFlexibleLengths(line, av, mainAvail, mainGap, mainAvail, crossAvail)
		positionMainAxis(line, av, n, mainAvail, mainGap)
	}
	distributeCrossAxis(n, lines, av, crossAvail, crossGap, mainAvail)

	if len(lines) > 0 {
		if lines[0].hasFirstBaseline {
			n.layout.FirstBaseline = lines[0].firstBaseline
			n.layout.HasFirstBaseline = true
			n.baselineC = baselineCache{pos: lines[0].firstBaseline, has: true}
		}
		last := lines[len(lines)-1]
		if last.hasFirstBaseline {
			n.layout.LastBaseline = last.firstBaseline
			n.layout.HasLastBaseline = true
		}
	}

	for _, line := range lines {
		for _, it := range line.items {
			mainPos, crossPos := it.mainPos, it.crossPos
			mainPos, crossPos = applyRelativeOffset(it.node, mainAvail, crossAvail, av, mainPos, crossPos)

			x, y := av.composeWH(mainPos, crossPos)
			x += contentLeft
			y += contentTop
			w, h := av.composeWH(it.resolvedMain, it.resolvedCross)

			it.node.layout.Left, it.node.layout.Top = x, y
			runFlexLayout(it.node, w, h)
		}
	}

	layoutAbsoluteChildren(n, contentLeft, contentTop, contentW, contentH)
}

// sortedNormalFlowChildren returns the children that participate in
// normal flow (display != none, position != absolute), stable-sorted
// by `order` (equal order preserves insertion order).
func sortedNormalFlowChildren(n *Node) []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if c.display == DisplayNone || c.positionType == Absolute {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}
