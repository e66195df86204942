package flex

import "math"

// ensureIntrinsicSize returns n's cached intrinsic content size,
// recomputing bottom-up when the cache is stale. The
// cache is basis-free: intrinsic size is always computed against an
// indefinite (+Inf, +Inf) availability, matching "substituting +∞ for
// any indefinite basis" for the common case where a node's own size is
// itself what's being discovered.
func (n *Node) ensureIntrinsicSize() (w, h float64) {
	if n.intrinsic.hasW && n.intrinsic.hasH {
		return n.intrinsic.w, n.intrinsic.h
	}

	var contentW, contentH float64
	switch {
	case n.measureFunc != nil:
		contentW, contentH = n.measureFunc(n, math.Inf(1), math.Inf(1))
		contentW = clampSize(contentW, 0, math.Inf(1))
		contentH = clampSize(contentH, 0, math.Inf(1))
	case len(n.children) > 0:
		contentW, contentH = n.aggregateChildrenIntrinsic()
	default:
		contentW, contentH = 0, 0
	}

	padBorderW := numeric(n.paddingLeft, 0) + numeric(n.paddingRight, 0) + numeric(n.borderLeft, 0) + numeric(n.borderRight, 0)
	padBorderH := numeric(n.paddingTop, 0) + numeric(n.paddingBottom, 0) + numeric(n.borderTop, 0) + numeric(n.borderBottom, 0)

	w = contentW + padBorderW
	h = contentH + padBorderH

	n.intrinsic.w, n.intrinsic.h = w, h
	n.intrinsic.hasW, n.intrinsic.hasH = true, true
	return w, h
}

// aggregateChildrenIntrinsic is a deliberately over-approximate
// aggregation: in a nowrap container, main-axis
// sizes sum and cross-axis sizes take the max (plus each child's
// axis-appropriate margins); otherwise main-axis sizes max and
// cross-axis sizes sum. This never simulates the real line partition.
func (n *Node) aggregateChildrenIntrinsic() (w, h float64) {
	av := newAxisView(n)
	gap := av.mainGap(n, math.Inf(1))

	var mainSum, mainMax, crossSum, crossMax float64
	count := 0
	for _, c := range n.children {
		if c.display == DisplayNone || c.positionType == Absolute {
			continue
		}
		cw, ch := c.ensureIntrinsicSize()
		cw, ch = applyAspectRatioToMeasured(c, cw, ch)

		mainMargin := numeric(av.mainMarginStart(c), 0) + numeric(av.mainMarginEnd(c), 0)
		crossMargin := numeric(av.crossMarginStart(c), 0) + numeric(av.crossMarginEnd(c), 0)

		cMain := av.mainSize(cw, ch) + mainMargin
		cCross := av.crossSize(cw, ch) + crossMargin

		mainSum += cMain
		if cMain > mainMax {
			mainMax = cMain
		}
		crossSum += cCross
		if cCross > crossMax {
			crossMax = cCross
		}
		count++
	}
	if count > 1 {
		mainSum += gap * float64(count-1)
	}

	var main, cross float64
	if n.flexWrap == NoWrap {
		main, cross = mainSum, crossMax
	} else {
		main, cross = mainMax, crossSum
	}
	return av.composeWH(main, cross)
}

// applyAspectRatioToMeasured resolves an aspect-ratio transfer against
// a pair of measured content dimensions, used wherever intrinsic
// aggregation needs a single consistent (w, h) for a child that only
// defines one axis through its aspect ratio. Real layout-time transfer
// (against resolved style sizes) happens in flexbase.go.
func applyAspectRatioToMeasured(n *Node, w, h float64) (float64, float64) {
	if !n.hasAspectRatio {
		return w, h
	}
	if n.width.Kind != ValuePoint && n.height.Kind == ValuePoint {
		return n.height.Magnitude * n.aspectRatio, n.height.Magnitude
	}
	if n.width.Kind == ValuePoint && n.height.Kind != ValuePoint {
		return n.width.Magnitude, n.width.Magnitude / n.aspectRatio
	}
	return w, h
}
