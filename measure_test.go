package flex

import (
	"math"
	"testing"
)

func TestEnsureIntrinsicSizeUsesMeasureFunc(t *testing.T) {
	n := NewNode()
	n.SetMeasureFunc(func(node *Node, w, h float64) (float64, float64) { return 15, 4 })
	w, h := n.ensureIntrinsicSize()
	if w != 15 || h != 4 {
		t.Errorf("ensureIntrinsicSize() = (%v, %v), want (15, 4)", w, h)
	}
}

func TestEnsureIntrinsicSizeAddsPaddingAndBorder(t *testing.T) {
	n := NewNode()
	n.SetMeasureFunc(func(node *Node, w, h float64) (float64, float64) { return 10, 10 })
	n.SetPaddingLeft(Point(2))
	n.SetPaddingRight(Point(3))
	n.SetBorderTop(Point(1))
	n.SetBorderBottom(Point(1))

	w, h := n.ensureIntrinsicSize()
	if w != 15 {
		t.Errorf("intrinsic width = %v, want 15 (10 + 2 + 3)", w)
	}
	if h != 12 {
		t.Errorf("intrinsic height = %v, want 12 (10 + 1 + 1)", h)
	}
}

func TestEnsureIntrinsicSizeCaches(t *testing.T) {
	calls := 0
	n := NewNode()
	n.SetMeasureFunc(func(node *Node, w, h float64) (float64, float64) {
		calls++
		return 5, 5
	})
	n.ensureIntrinsicSize()
	n.ensureIntrinsicSize()
	if calls != 1 {
		t.Errorf("measureFunc called %d times, want 1 (cached)", calls)
	}
}

func TestAggregateChildrenIntrinsicNoWrapSumsMain(t *testing.T) {
	parent := NewNode() // row, nowrap by default
	a := NewNode()
	a.SetMeasureFunc(func(n *Node, w, h float64) (float64, float64) { return 10, 3 })
	b := NewNode()
	b.SetMeasureFunc(func(n *Node, w, h float64) (float64, float64) { return 20, 5 })
	parent.AppendChild(a)
	parent.AppendChild(b)

	w, h := parent.ensureIntrinsicSize()
	if w != 30 {
		t.Errorf("nowrap row intrinsic width = %v, want 30 (sum of main)", w)
	}
	if h != 5 {
		t.Errorf("nowrap row intrinsic height = %v, want 5 (max of cross)", h)
	}
}

func TestAggregateChildrenIntrinsicWrapMaxesMain(t *testing.T) {
	parent := NewNode()
	parent.SetFlexWrap(Wrap)
	a := NewNode()
	a.SetMeasureFunc(func(n *Node, w, h float64) (float64, float64) { return 10, 3 })
	b := NewNode()
	b.SetMeasureFunc(func(n *Node, w, h float64) (float64, float64) { return 20, 5 })
	parent.AppendChild(a)
	parent.AppendChild(b)

	w, h := parent.ensureIntrinsicSize()
	if w != 20 {
		t.Errorf("wrap row intrinsic width = %v, want 20 (max of main)", w)
	}
	if h != 8 {
		t.Errorf("wrap row intrinsic height = %v, want 8 (sum of cross)", h)
	}
}

func TestAggregateChildrenIntrinsicSkipsAbsoluteAndNone(t *testing.T) {
	parent := NewNode()
	a := NewNode()
	a.SetMeasureFunc(func(n *Node, w, h float64) (float64, float64) { return 10, 3 })
	abs := NewNode()
	abs.SetPositionType(Absolute)
	abs.SetMeasureFunc(func(n *Node, w, h float64) (float64, float64) { return 1000, 1000 })
	none := NewNode()
	none.SetDisplay(DisplayNone)
	none.SetMeasureFunc(func(n *Node, w, h float64) (float64, float64) { return 1000, 1000 })

	parent.AppendChild(a)
	parent.AppendChild(abs)
	parent.AppendChild(none)

	w, _ := parent.ensureIntrinsicSize()
	if w != 10 {
		t.Errorf("intrinsic width = %v, want 10 (absolute/none children ignored)", w)
	}
}

func TestApplyAspectRatioToMeasured(t *testing.T) {
	n := NewNode()
	n.SetAspectRatio(2)
	n.SetWidth(Point(20))

	w, h := applyAspectRatioToMeasured(n, 5, 5)
	if w != 20 || h != 10 {
		t.Errorf("applyAspectRatioToMeasured = (%v, %v), want (20, 10)", w, h)
	}
}

func TestClampMainAxisAutoMinimumUsesSmallerOfContentAndSpecified(t *testing.T) {
	n := NewNode()
	n.SetMeasureFunc(func(node *Node, w, h float64) (float64, float64) { return 50, 10 })
	n.SetWidth(Point(30))
	av := newAxisView(n)

	got := clampMainAxis(n, av, 5, math.Inf(1), math.Inf(1))
	if got != 30 {
		t.Errorf("clampMainAxis with auto min = %v, want 30 (min(specified 30, content 50))", got)
	}
}
