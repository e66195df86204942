package flex

import "math"

// flexItem carries the per-item state the main-pass stages thread
// from base-size computation through cross-axis positioning for one
// normal-flow child of a flex container.
type flexItem struct {
	node *Node

	baseSize     float64 // flex base size
	hypCross     float64 // hypothetical cross size
	target       float64 // current main-axis target during resolution
	frozen       bool
	resolvedMain float64 // final main size after C7
	resolvedCross float64

	mainMarginStart, mainMarginEnd   float64
	crossMarginStart, crossMarginEnd float64
	mainMarginAuto, mainMarginAutoS, mainMarginAutoE bool
	crossMarginAutoS, crossMarginAutoE               bool

	mainPos, crossPos float64
}

// clampMainAxis applies the node's main-axis min/max, folding in the
// automatic minimum size (CSS Sizing L3) when
// the main min size is `auto`: the used minimum is the smaller of the
// item's content-based main size and its specified main size
// property, never exceeding the max.
func clampMainAxis(n *Node, av axisView, candidate, mainAvail, crossAvail float64) float64 {
	sz := av.mainStyle(n)
	min, _ := resolve(sz.min, mainAvail)
	max, hasMax := resolve(sz.max, mainAvail)
	if !hasMax {
		max = math.Inf(1)
	}

	if sz.min.Kind == ValueAuto || sz.min.Kind == ValueUndefined {
		contentW, contentH := n.ensureIntrinsicSize()
		contentW, contentH = applyAspectRatioToMeasured(n, contentW, contentH)
		contentMain := av.mainSize(contentW, contentH)

		specifiedMain, hasSpecified := resolve(sz.size, mainAvail)
		autoMin := contentMain
		if hasSpecified && specifiedMain < autoMin {
			autoMin = specifiedMain
		}
		if autoMin > max {
			autoMin = max
		}
		if autoMin < 0 {
			autoMin = 0
		}
		min = autoMin
	}

	return clampSize(candidate, min, max)
}

// aspectRatioTransfer: if exactly one of width/height is definite and
// the node has an aspect ratio, the other axis becomes definite/r or
// definite*r.
func aspectRatioTransfer(n *Node, width, height float64, widthDefinite, heightDefinite bool) (float64, float64, bool, bool) {
	if !n.hasAspectRatio {
		return width, height, widthDefinite, heightDefinite
	}
	if widthDefinite && !heightDefinite {
		return width, width / n.aspectRatio, true, true
	}
	if heightDefinite && !widthDefinite {
		return height * n.aspectRatio, height, true, true
	}
	return width, height, widthDefinite, heightDefinite
}

// computeFlexBase computes a child's flex base size and hypothetical
// cross size. mainAvail/crossAvail are the container's
// inner (content-box) available sizes on each axis; either may be
// +Inf when indefinite.
func computeFlexBase(n *Node, av axisView, mainAvail, crossAvail float64) flexItem {
	mainSz := av.mainStyle(n)

	var baseSize float64
	switch {
	case n.flexBasis.Kind == ValuePoint || n.flexBasis.Kind == ValuePercent:
		baseSize, _ = resolve(n.flexBasis, mainAvail)
	case n.flexBasis.Kind == ValueContent:
		baseSize = contentMainSize(n, av, mainAvail, crossAvail)
	default: // auto or undefined
		if v, ok := resolve(mainSz.size, mainAvail); ok {
			baseSize = v
		} else {
			baseSize = contentMainSize(n, av, mainAvail, crossAvail)
		}
	}

	// Aspect-ratio transfer against the now-resolved main size, using
	// the node's own definite cross style size (if any) to decide
	// which axis drives the transfer.
	crossSz := av.crossStyle(n)
	crossResolved, crossHasStyle := resolve(crossSz.size, crossAvail)
	mainIsW := av.mainIsRow
	w, h := av.composeWH(baseSize, crossResolved)
	widthDef, heightDef := mainIsW, crossHasStyle
	if !mainIsW {
		widthDef, heightDef = crossHasStyle, true
	}
	w, h, widthDef, heightDef = aspectRatioTransfer(n, w, h, widthDef, heightDef)
	baseSize = av.mainSize(w, h)
	if mainIsW && heightDef {
		crossResolved = h
	} else if !mainIsW && widthDef {
		crossResolved = w
	}

	baseSize = clampMainAxis(n, av, baseSize, mainAvail, crossAvail)

	hypCross := crossResolved
	if !crossHasStyle {
		contentW, contentH := n.ensureIntrinsicSize()
		contentW, contentH = applyAspectRatioToMeasured(n, contentW, contentH)
		hypCross = av.crossSize(contentW, contentH)
	}

	item := flexItem{node: n, baseSize: baseSize, hypCross: hypCross, target: baseSize}
	item.mainMarginStart, item.mainMarginAutoS = resolveMargin(av.mainMarginStart(n), mainAvail)
	item.mainMarginEnd, item.mainMarginAutoE = resolveMargin(av.mainMarginEnd(n), mainAvail)
	item.crossMarginStart, item.crossMarginAutoS = resolveMargin(av.crossMarginStart(n), crossAvail)
	item.crossMarginEnd, item.crossMarginAutoE = resolveMargin(av.crossMarginEnd(n), crossAvail)
	item.mainMarginAuto = item.mainMarginAutoS || item.mainMarginAutoE
	return item
}

// resolveMargin resolves a margin Value, reporting whether it is the
// `auto` keyword (auto margins are handled specially by the
// positioners).
func resolveMargin(v Value, basis float64) (float64, bool) {
	if v.Kind == ValueAuto {
		return 0, true
	}
	return numeric(v, basis), false
}

// contentMainSize is the measured content main size used for
// flex-basis:content and for basis:auto with an auto/undefined size
// property.
func contentMainSize(n *Node, av axisView, mainAvail, crossAvail float64) float64 {
	if n.measureFunc != nil {
		availW, availH := av.composeWH(mainAvail, crossAvail)
		w, h := n.measureFunc(n, availW, availH)
		w = clampSize(w, 0, math.Inf(1))
		h = clampSize(h, 0, math.Inf(1))
		w, h = applyAspectRatioToMeasured(n, w, h)
		return av.mainSize(w, h) + padBorderMain(n, av)
	}
	contentW, contentH := n.ensureIntrinsicSize()
	contentW, contentH = applyAspectRatioToMeasured(n, contentW, contentH)
	return av.mainSize(contentW, contentH)
}

func padBorderMain(n *Node, av axisView) float64 {
	if av.mainIsRow {
		return numeric(n.paddingLeft, 0) + numeric(n.paddingRight, 0) + numeric(n.borderLeft, 0) + numeric(n.borderRight, 0)
	}
	return numeric(n.paddingTop, 0) + numeric(n.paddingBottom, 0) + numeric(n.borderTop, 0) + numeric(n.borderBottom, 0)
}
