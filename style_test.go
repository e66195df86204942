package flex

import "testing"

func TestSetKnownSizeKeyWritesField(t *testing.T) {
	n := NewNode()
	if err := n.Set("width", 100.0); err != nil {
		t.Fatalf("Set(width, 100.0): unexpected error %v", err)
	}
	if n.width != Point(100) {
		t.Errorf("n.width = %+v, want Point(100)", n.width)
	}
}

func TestSetAcceptsParseableString(t *testing.T) {
	n := NewNode()
	if err := n.Set("width", "50%"); err != nil {
		t.Fatalf("Set(width, \"50%%\"): unexpected error %v", err)
	}
	if n.width != Percent(50) {
		t.Errorf("n.width = %+v, want Percent(50)", n.width)
	}
}

func TestSetAcceptsEnumValue(t *testing.T) {
	n := NewNode()
	if err := n.Set("flexDirection", Column); err != nil {
		t.Fatalf("Set(flexDirection, Column): unexpected error %v", err)
	}
	if n.flexDirection != Column {
		t.Errorf("n.flexDirection = %v, want Column", n.flexDirection)
	}
}

func TestSetUnknownPropertyReturnsError(t *testing.T) {
	n := NewNode()
	err := n.Set("bogus", 1.0)
	if err == nil {
		t.Fatalf("Set(bogus, 1.0): err = nil, want *UnknownProperty")
	}
	if _, ok := err.(*UnknownProperty); !ok {
		t.Errorf("Set(bogus, ...): err type = %T, want *UnknownProperty", err)
	}
}

// Per-field InvalidValue coverage: flexGrow, flexShrink, order and
// aspectRatio each reject bad input with *InvalidValue.
func TestSetInvalidValuePerField(t *testing.T) {
	cases := []struct {
		key   string
		value any
	}{
		{"flexGrow", -1.0},
		{"flexShrink", -2.0},
		{"order", nan()},
		{"aspectRatio", 0.0},
		{"aspectRatio", -1.0},
	}
	for _, c := range cases {
		n := NewNode()
		err := n.Set(c.key, c.value)
		if err == nil {
			t.Errorf("Set(%s, %v): err = nil, want *InvalidValue", c.key, c.value)
			continue
		}
		if _, ok := err.(*InvalidValue); !ok {
			t.Errorf("Set(%s, %v): err type = %T, want *InvalidValue", c.key, c.value, err)
		}
	}
}

func TestSetInvalidValueLeavesFieldUnchanged(t *testing.T) {
	n := NewNode()
	if err := n.Set("flexGrow", -1.0); err == nil {
		t.Fatalf("Set(flexGrow, -1.0): want error")
	}
	if n.flexGrow != 0 {
		t.Errorf("n.flexGrow = %v after rejected Set, want unchanged default 0", n.flexGrow)
	}
}

func TestSetMalformedAspectRatioStringIsInvalid(t *testing.T) {
	n := NewNode()
	err := n.Set("aspectRatio", "not-a-number")
	if _, ok := err.(*InvalidValue); !ok {
		t.Errorf("Set(aspectRatio, \"not-a-number\"): err type = %T, want *InvalidValue", err)
	}
}

// Style must validate every key before writing anything:
// an UnknownProperty leaves the whole node untouched, even when other
// keys in the same call are valid and sort earlier in the priority
// order.
func TestStyleUnknownPropertyAtomicity(t *testing.T) {
	n := NewNode()
	err := n.Style(map[string]any{
		"width":  100.0,
		"bogus":  "oops",
		"height": 50.0,
	})
	if err == nil {
		t.Fatalf("Style with an unknown key: err = nil, want *UnknownProperty")
	}
	if _, ok := err.(*UnknownProperty); !ok {
		t.Errorf("Style: err type = %T, want *UnknownProperty", err)
	}
	if n.width != Undefined {
		t.Errorf("n.width = %+v after rejected Style, want Undefined (no partial mutation)", n.width)
	}
	if n.height != Undefined {
		t.Errorf("n.height = %+v after rejected Style, want Undefined (no partial mutation)", n.height)
	}
}

// A per-field InvalidValue inside Style still leaves only that field
// unchanged; other keys in the same call are applied.
func TestStyleInvalidValueAppliesOtherKeys(t *testing.T) {
	n := NewNode()
	err := n.Style(map[string]any{
		"width":    100.0,
		"flexGrow": -1.0,
	})
	if err == nil {
		t.Fatalf("Style with an invalid flexGrow: err = nil, want *InvalidValue")
	}
	if _, ok := err.(*InvalidValue); !ok {
		t.Errorf("Style: err type = %T, want *InvalidValue", err)
	}
	if n.width != Point(100) {
		t.Errorf("n.width = %+v, want Point(100) (valid key still applied)", n.width)
	}
	if n.flexGrow != 0 {
		t.Errorf("n.flexGrow = %v, want unchanged default 0", n.flexGrow)
	}
}

// Style propagates dirty exactly once via Batch, even though it
// writes through several setters.
func TestStylePropagatesDirtyOnce(t *testing.T) {
	parent := NewNode()
	child := NewNode()
	parent.AppendChild(child)
	parent.isDirty, child.isDirty = false, false

	if err := child.Style(map[string]any{"width": 10.0, "height": 20.0}); err != nil {
		t.Fatalf("Style: unexpected error %v", err)
	}
	if !parent.IsDirty() {
		t.Errorf("parent.IsDirty() = false after child.Style, want true")
	}
}

// The margin shorthand expands to all four sides.
func TestStyleMarginShorthandExpandsToAllSides(t *testing.T) {
	n := NewNode()
	if err := n.Style(map[string]any{"margin": 5.0}); err != nil {
		t.Fatalf("Style(margin): unexpected error %v", err)
	}
	for name, got := range map[string]Value{
		"marginTop":    n.marginTop,
		"marginRight":  n.marginRight,
		"marginBottom": n.marginBottom,
		"marginLeft":   n.marginLeft,
	} {
		if got != Point(5) {
			t.Errorf("%s = %+v, want Point(5)", name, got)
		}
	}
}

// The padding shorthand behaves the same way as margin.
func TestStylePaddingShorthandExpandsToAllSides(t *testing.T) {
	n := NewNode()
	if err := n.Style(map[string]any{"padding": "3"}); err != nil {
		t.Fatalf("Style(padding): unexpected error %v", err)
	}
	if n.paddingTop != Point(3) || n.paddingRight != Point(3) || n.paddingBottom != Point(3) || n.paddingLeft != Point(3) {
		t.Errorf("padding shorthand did not expand to all four sides: %+v %+v %+v %+v",
			n.paddingTop, n.paddingRight, n.paddingBottom, n.paddingLeft)
	}
}

// The gap shorthand expands to both rowGap and columnGap.
func TestStyleGapShorthandExpandsToBothAxes(t *testing.T) {
	n := NewNode()
	if err := n.Style(map[string]any{"gap": 4.0}); err != nil {
		t.Fatalf("Style(gap): unexpected error %v", err)
	}
	if n.rowGap != Point(4) || n.columnGap != Point(4) {
		t.Errorf("gap shorthand: rowGap=%+v columnGap=%+v, want both Point(4)", n.rowGap, n.columnGap)
	}
}

// A shorthand and a per-side override in the same Style call apply in
// the fixed
// priority order (shorthand first), not map iteration order, so the
// per-side value always wins regardless of how Go happened to range
// over the map.
func TestStylePriorityOrderShorthandThenOverride(t *testing.T) {
	n := NewNode()
	if err := n.Style(map[string]any{
		"margin":     10.0,
		"marginLeft": 99.0,
	}); err != nil {
		t.Fatalf("Style: unexpected error %v", err)
	}
	if n.marginLeft != Point(99) {
		t.Errorf("n.marginLeft = %+v, want Point(99) (per-side override must apply after shorthand)", n.marginLeft)
	}
	if n.marginTop != Point(10) || n.marginRight != Point(10) || n.marginBottom != Point(10) {
		t.Errorf("other sides = %+v/%+v/%+v, want all Point(10) from the shorthand",
			n.marginTop, n.marginRight, n.marginBottom)
	}
}

// NewNodeFromBag ignores malformed values silently rather than
// erroring.
func TestNewNodeFromBagIgnoresMalformedValue(t *testing.T) {
	n := NewNodeFromBag(map[string]any{
		"flexGrow": -1.0,
		"width":    100.0,
	})
	if n.flexGrow != 0 {
		t.Errorf("n.flexGrow = %v, want unchanged default 0 (bag mode ignores invalid values)", n.flexGrow)
	}
	if n.width != Point(100) {
		t.Errorf("n.width = %+v, want Point(100)", n.width)
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
