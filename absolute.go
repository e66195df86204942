package flex

// layoutAbsoluteChildren sizes and places each absolutely positioned
// child against the container's content box, in document order (an
// absolute child's `order` does not affect it), then recursively lays
// out the child against its own resolved box.
func layoutAbsoluteChildren(n *Node, contentLeft, contentTop, contentW, contentH float64) {
	for _, c := range n.children {
		if c.positionType != Absolute || c.display == DisplayNone {
			continue
		}

		w, hasW := resolve(c.width, contentW)
		h, hasH := resolve(c.height, contentH)

		if !hasW && !hasH {
			iw, ih := c.ensureIntrinsicSize()
			iw, ih = applyAspectRatioToMeasured(c, iw, ih)
			w, h, hasW, hasH = iw, ih, true, true
		}
		w, h, hasW, hasH = aspectRatioTransfer(c, w, h, hasW, hasH)
		if !hasW {
			w = 0
		}
		if !hasH {
			h = 0
		}

		left, leftHas := resolve(c.left, contentW)
		right, rightHas := resolve(c.right, contentW)
		top, topHas := resolve(c.top, contentH)
		bottom, bottomHas := resolve(c.bottom, contentH)

		if leftHas && rightHas {
			w = contentW - left - right
		}
		if topHas && bottomHas {
			h = contentH - top - bottom
		}
		w = clampSize(w, numeric(c.minWidth, contentW), maxOrInf(c.maxWidth, contentW))
		h = clampSize(h, numeric(c.minHeight, contentH), maxOrInf(c.maxHeight, contentH))

		var x, y float64
		switch {
		case leftHas:
			x = contentLeft + left
		case rightHas:
			x = contentLeft + contentW - w - right
		default:
			x = contentLeft + absFallbackOffset(n, c, contentW, w)
		}

		switch {
		case topHas:
			y = contentTop + top
		case bottomHas:
			y = contentTop + contentH - h - bottom
		default:
			y = contentTop + absFallbackOffset(n, c, contentH, h)
		}

		c.layout.Left, c.layout.Top = x, y
		runFlexLayout(c, w, h)
	}
}

// absFallbackOffset computes the static-position fallback: when
// neither inset on an axis is definite, the item is placed using
// start/center/end over the content box. There are no separate
// justify-self/justify-items fields, so alignSelf/alignItems govern
// both axes.
func absFallbackOffset(container, c *Node, contentSize, itemSize float64) float64 {
	align, _ := effectiveAlign(container, c)
	switch align {
	case AlignFlexEnd:
		return contentSize - itemSize
	case AlignCenter:
		return (contentSize - itemSize) / 2
	default:
		return 0
	}
}
