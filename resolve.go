package flex

import "math"

const flexEpsilon = 1e-7

// resolveFlexibleLengths runs the iterative grow/shrink resolver for
// one line. av/mainAvail/crossAvail let it re-derive
// each item's main-axis min/max (including the automatic-minimum-size
// rule) while clamping candidate sizes.
func resolveFlexibleLengths(line *flexLine, av axisView, M, gap, mainAvail, crossAvail float64) {
	items := line.items
	n := len(items)
	if n == 0 {
		return
	}

	growing := func() bool {
		used := 0.0
		for _, it := range items {
			used += it.mainMarginStart + it.target + it.mainMarginEnd
		}
		used += gap * float64(n-1)
		return M-used > 0
	}()

	for pass := 0; pass < n; pass++ {
		used := 0.0
		for _, it := range items {
			used += it.mainMarginStart + it.target + it.mainMarginEnd
		}
		used += gap * float64(n-1)
		freeSpace := M - used

		if math.Abs(freeSpace) < flexEpsilon {
			break
		}
		// A line that started with free space to grow can flip sign
		// after the first clamp-driven freeze; it never switches which
		// rule (grow vs shrink) it runs, so that unfrozen items aren't
		// bounced between rules by floating-point noise.
		isGrow := growing

		var totalFactor float64
		for _, it := range items {
			if it.frozen {
				continue
			}
			if isGrow {
				totalFactor += it.node.flexGrow
			} else {
				totalFactor += it.node.flexShrink * it.baseSize
			}
		}
		if totalFactor == 0 {
			break
		}

		changed := false
		for _, it := range items {
			if it.frozen {
				continue
			}
			var factor float64
			if isGrow {
				factor = it.node.flexGrow
			} else {
				factor = it.node.flexShrink * it.baseSize
			}
			if factor == 0 {
				continue
			}
			next := it.target + (factor/totalFactor)*freeSpace
			clamped := clampMainAxis(it.node, av, next, mainAvail, crossAvail)
			if clamped != next {
				it.frozen = true
			}
			if clamped != it.target {
				changed = true
			}
			it.target = clamped
		}
		if !changed {
			break
		}
	}

	for _, it := range items {
		it.resolvedMain = it.target
	}
}
