package flex

import "math"

// setValue writes a Value field, skipping the write (and the dirty
// propagation) when the incoming value is structurally equal to the
// stored one.
func (n *Node) setValue(field *Value, v Value) {
	if field.Equal(v) {
		return
	}
	*field = v
	n.markDirty()
}

func (n *Node) SetFlexDirection(v FlexDirection) {
	if n.flexDirection == v {
		return
	}
	n.flexDirection = v
	n.markDirty()
}

func (n *Node) SetFlexWrap(v FlexWrap) {
	if n.flexWrap == v {
		return
	}
	n.flexWrap = v
	n.markDirty()
}

func (n *Node) SetJustifyContent(v Justify) {
	if n.justifyContent == v {
		return
	}
	n.justifyContent = v
	n.markDirty()
}

func (n *Node) SetAlignItems(v Align) {
	if n.alignItems == v {
		return
	}
	n.alignItems = v
	n.markDirty()
}

func (n *Node) SetAlignSelf(v Align) {
	if n.alignSelf == v {
		return
	}
	n.alignSelf = v
	n.markDirty()
}

func (n *Node) SetAlignContent(v AlignContentKeyword) {
	if n.alignContent == v {
		return
	}
	n.alignContent = v
	n.markDirty()
}

func (n *Node) SetAlignItemsSafety(v Safety) {
	if n.alignItemsSafety == v {
		return
	}
	n.alignItemsSafety = v
	n.markDirty()
}

func (n *Node) SetAlignSelfSafety(v Safety) {
	if n.alignSelfSafety == v {
		return
	}
	n.alignSelfSafety = v
	n.markDirty()
}

func (n *Node) SetAlignContentSafety(v Safety) {
	if n.alignContentSafety == v {
		return
	}
	n.alignContentSafety = v
	n.markDirty()
}

// SetFlexGrow sets flex-grow; negative or non-finite values are
// rejected with InvalidValue and the node is left unchanged.
func (n *Node) SetFlexGrow(v float64) error {
	if !isDefinite(v) || v < 0 {
		return invalidValuef("flexGrow", "must be a finite number >= 0, got %v", v)
	}
	if n.flexGrow == v {
		return nil
	}
	n.flexGrow = v
	n.markDirty()
	return nil
}

// SetFlexShrink sets flex-shrink; same constraints as SetFlexGrow.
func (n *Node) SetFlexShrink(v float64) error {
	if !isDefinite(v) || v < 0 {
		return invalidValuef("flexShrink", "must be a finite number >= 0, got %v", v)
	}
	if n.flexShrink == v {
		return nil
	}
	n.flexShrink = v
	n.markDirty()
	return nil
}

func (n *Node) SetFlexBasis(v Value) { n.setValue(&n.flexBasis, v) }

func (n *Node) SetWidth(v Value)     { n.setValue(&n.width, v) }
func (n *Node) SetHeight(v Value)    { n.setValue(&n.height, v) }
func (n *Node) SetMinWidth(v Value)  { n.setValue(&n.minWidth, v) }
func (n *Node) SetMinHeight(v Value) { n.setValue(&n.minHeight, v) }
func (n *Node) SetMaxWidth(v Value)  { n.setValue(&n.maxWidth, v) }
func (n *Node) SetMaxHeight(v Value) { n.setValue(&n.maxHeight, v) }

func (n *Node) SetMarginTop(v Value)    { n.setValue(&n.marginTop, v) }
func (n *Node) SetMarginRight(v Value)  { n.setValue(&n.marginRight, v) }
func (n *Node) SetMarginBottom(v Value) { n.setValue(&n.marginBottom, v) }
func (n *Node) SetMarginLeft(v Value)   { n.setValue(&n.marginLeft, v) }

func (n *Node) SetPaddingTop(v Value)    { n.setValue(&n.paddingTop, v) }
func (n *Node) SetPaddingRight(v Value)  { n.setValue(&n.paddingRight, v) }
func (n *Node) SetPaddingBottom(v Value) { n.setValue(&n.paddingBottom, v) }
func (n *Node) SetPaddingLeft(v Value)   { n.setValue(&n.paddingLeft, v) }

func (n *Node) SetBorderTop(v Value)    { n.setValue(&n.borderTop, v) }
func (n *Node) SetBorderRight(v Value)  { n.setValue(&n.borderRight, v) }
func (n *Node) SetBorderBottom(v Value) { n.setValue(&n.borderBottom, v) }
func (n *Node) SetBorderLeft(v Value)   { n.setValue(&n.borderLeft, v) }

func (n *Node) SetTop(v Value)    { n.setValue(&n.top, v) }
func (n *Node) SetRight(v Value)  { n.setValue(&n.right, v) }
func (n *Node) SetBottom(v Value) { n.setValue(&n.bottom, v) }
func (n *Node) SetLeft(v Value)   { n.setValue(&n.left, v) }

func (n *Node) SetRowGap(v Value)    { n.setValue(&n.rowGap, v) }
func (n *Node) SetColumnGap(v Value) { n.setValue(&n.columnGap, v) }

func (n *Node) SetPositionType(v PositionType) {
	if n.positionType == v {
		return
	}
	n.positionType = v
	n.markDirty()
}

func (n *Node) SetDisplay(v Display) {
	if n.display == v {
		return
	}
	n.display = v
	n.markDirty()
}

// SetOrder sets the document-order override; the incoming value is
// rounded to the nearest integer and rejected if non-finite.
func (n *Node) SetOrder(v float64) error {
	if !isDefinite(v) {
		return invalidValuef("order", "must be a finite number, got %v", v)
	}
	rounded := int(math.Round(v))
	if n.order == rounded {
		return nil
	}
	n.order = rounded
	n.markDirty()
	return nil
}

func (n *Node) SetDirection(v TextDirection) {
	if n.direction == v {
		return
	}
	n.direction = v
	n.markDirty()
}

func (n *Node) SetWritingMode(v WritingMode) {
	if n.writingMode == v {
		return
	}
	n.writingMode = v
	n.markDirty()
}

// SetAspectRatio sets a positive width/height ratio. A non-finite or
// non-positive ratio is rejected with InvalidValue.
func (n *Node) SetAspectRatio(r float64) error {
	if !isDefinite(r) || r <= 0 {
		return invalidValuef("aspectRatio", "must be a finite number > 0, got %v", r)
	}
	if n.hasAspectRatio && n.aspectRatio == r {
		return nil
	}
	n.aspectRatio = r
	n.hasAspectRatio = true
	n.markDirty()
	return nil
}

// ClearAspectRatio removes a previously set aspect ratio.
func (n *Node) ClearAspectRatio() {
	if !n.hasAspectRatio {
		return
	}
	n.hasAspectRatio = false
	n.aspectRatio = 0
	n.markDirty()
}

// SetMeasureFunc installs (or clears, with nil) the leaf content
// callback. This only invalidates intrinsic-size caches, not the
// dirty flag proper: the node's own geometry may still be
// valid if its parent hasn't changed, but any measurement derived from
// the old callback is stale.
func (n *Node) SetMeasureFunc(f MeasureFunc) {
	n.measureFunc = f
	n.invalidateIntrinsicSize()
}

// SetBaselineFunc installs (or clears) the leaf baseline callback,
// invalidating only the baseline cache.
func (n *Node) SetBaselineFunc(f BaselineFunc) {
	n.baselineFunc = f
	n.invalidateBaseline()
}

// Batch suspends dirty propagation for the duration of f, then, if
// dirtying wasn't already suspended by an outer Batch, propagates at
// most once.
func (n *Node) Batch(f func(*Node)) {
	outer := n.suspendDirty
	n.suspendDirty = true
	f(n)
	n.suspendDirty = outer
	if !outer {
		n.markDirty()
	}
}

// styleKeyPriority lists every recognised Set/Style key in the
// deterministic application order used by Style: sizes, aspect ratio,
// margin/padding/border shorthands each followed by their per-side
// overrides, insets, gaps, flex factors and order, then direction/wrap,
// alignment and the remaining container-level keywords.
var styleKeyPriority = []string{
	"width", "height", "minWidth", "minHeight", "maxWidth", "maxHeight",
	"aspectRatio",
	"margin", "marginTop", "marginRight", "marginBottom", "marginLeft",
	"padding", "paddingTop", "paddingRight", "paddingBottom", "paddingLeft",
	"border", "borderTop", "borderRight", "borderBottom", "borderLeft",
	"top", "right", "bottom", "left",
	"gap", "rowGap", "columnGap",
	"flexGrow", "flexShrink", "flexBasis", "order",
	"flexDirection", "flexWrap",
	"justifyContent", "alignItems", "alignSelf", "alignContent",
	"alignItemsSafety", "alignSelfSafety", "alignContentSafety",
	"positionType", "display", "direction", "writingMode",
}

// Style applies a set of keyed style values atomically: every key is
// validated against the recognised set before anything is written, so
// an UnknownProperty leaves the node untouched. Keys are then applied
// in the fixed priority order above rather than map iteration order.
// A per-field InvalidValue still leaves only that field unchanged.
func (n *Node) Style(values map[string]any) error {
	known := make(map[string]bool, len(styleKeyPriority))
	for _, k := range styleKeyPriority {
		known[k] = true
	}
	for k := range values {
		if !known[k] {
			return &UnknownProperty{Key: k}
		}
	}
	var firstErr error
	n.Batch(func(n *Node) {
		for _, k := range styleKeyPriority {
			v, ok := values[k]
			if !ok {
				continue
			}
			if err := n.set(k, v, false); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	})
	return firstErr
}

// Set applies a single keyed style value, returning UnknownProperty
// for an unrecognised key.
func (n *Node) Set(key string, value any) error {
	return n.set(key, value, false)
}

func applyBag(n *Node, bag map[string]any) {
	for _, k := range styleKeyPriority {
		v, ok := bag[k]
		if !ok {
			continue
		}
		_ = n.set(k, v, true)
	}
}

// set is the shared implementation behind Set/Style/applyBag. In bag
// mode, unknown keys and malformed values are silently ignored;
// otherwise both are reported.
func (n *Node) set(key string, value any, bagMode bool) error {
	switch key {
	case "width":
		return n.setSizeKey(&n.width, key, value, bagMode)
	case "height":
		return n.setSizeKey(&n.height, key, value, bagMode)
	case "minWidth":
		return n.setSizeKey(&n.minWidth, key, value, bagMode)
	case "minHeight":
		return n.setSizeKey(&n.minHeight, key, value, bagMode)
	case "maxWidth":
		return n.setSizeKey(&n.maxWidth, key, value, bagMode)
	case "maxHeight":
		return n.setSizeKey(&n.maxHeight, key, value, bagMode)
	case "flexBasis":
		return n.setSizeKey(&n.flexBasis, key, value, bagMode)
	case "top":
		return n.setSizeKey(&n.top, key, value, bagMode)
	case "right":
		return n.setSizeKey(&n.right, key, value, bagMode)
	case "bottom":
		return n.setSizeKey(&n.bottom, key, value, bagMode)
	case "left":
		return n.setSizeKey(&n.left, key, value, bagMode)
	case "marginTop":
		return n.setSizeKey(&n.marginTop, key, value, bagMode)
	case "marginRight":
		return n.setSizeKey(&n.marginRight, key, value, bagMode)
	case "marginBottom":
		return n.setSizeKey(&n.marginBottom, key, value, bagMode)
	case "marginLeft":
		return n.setSizeKey(&n.marginLeft, key, value, bagMode)
	case "paddingTop":
		return n.setSizeKey(&n.paddingTop, key, value, bagMode)
	case "paddingRight":
		return n.setSizeKey(&n.paddingRight, key, value, bagMode)
	case "paddingBottom":
		return n.setSizeKey(&n.paddingBottom, key, value, bagMode)
	case "paddingLeft":
		return n.setSizeKey(&n.paddingLeft, key, value, bagMode)
	case "borderTop":
		return n.setSizeKey(&n.borderTop, key, value, bagMode)
	case "borderRight":
		return n.setSizeKey(&n.borderRight, key, value, bagMode)
	case "borderBottom":
		return n.setSizeKey(&n.borderBottom, key, value, bagMode)
	case "borderLeft":
		return n.setSizeKey(&n.borderLeft, key, value, bagMode)
	case "rowGap":
		return n.setSizeKey(&n.rowGap, key, value, bagMode)
	case "columnGap":
		return n.setSizeKey(&n.columnGap, key, value, bagMode)

	case "margin":
		return n.setShorthand4(key, value, bagMode, &n.marginTop, &n.marginRight, &n.marginBottom, &n.marginLeft)
	case "padding":
		return n.setShorthand4(key, value, bagMode, &n.paddingTop, &n.paddingRight, &n.paddingBottom, &n.paddingLeft)
	case "border":
		return n.setShorthand4(key, value, bagMode, &n.borderTop, &n.borderRight, &n.borderBottom, &n.borderLeft)
	case "gap":
		return n.setShorthand2(key, value, bagMode, &n.rowGap, &n.columnGap)

	case "aspectRatio":
		f, err := toFloat(value)
		if err != nil {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected a number, got %v", value)
		}
		return n.SetAspectRatio(f)

	case "flexGrow":
		f, err := toFloat(value)
		if err != nil {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected a number, got %v", value)
		}
		return n.SetFlexGrow(f)

	case "flexShrink":
		f, err := toFloat(value)
		if err != nil {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected a number, got %v", value)
		}
		return n.SetFlexShrink(f)

	case "order":
		f, err := toFloat(value)
		if err != nil {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected a number, got %v", value)
		}
		return n.SetOrder(f)

	case "flexDirection":
		v, ok := value.(FlexDirection)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected FlexDirection, got %v", value)
		}
		n.SetFlexDirection(v)
	case "flexWrap":
		v, ok := value.(FlexWrap)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected FlexWrap, got %v", value)
		}
		n.SetFlexWrap(v)
	case "justifyContent":
		v, ok := value.(Justify)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected Justify, got %v", value)
		}
		n.SetJustifyContent(v)
	case "alignItems":
		v, ok := value.(Align)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected Align, got %v", value)
		}
		n.SetAlignItems(v)
	case "alignSelf":
		v, ok := value.(Align)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected Align, got %v", value)
		}
		n.SetAlignSelf(v)
	case "alignContent":
		v, ok := value.(AlignContentKeyword)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected AlignContentKeyword, got %v", value)
		}
		n.SetAlignContent(v)
	case "alignItemsSafety":
		v, ok := value.(Safety)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected Safety, got %v", value)
		}
		n.SetAlignItemsSafety(v)
	case "alignSelfSafety":
		v, ok := value.(Safety)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected Safety, got %v", value)
		}
		n.SetAlignSelfSafety(v)
	case "alignContentSafety":
		v, ok := value.(Safety)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected Safety, got %v", value)
		}
		n.SetAlignContentSafety(v)
	case "positionType":
		v, ok := value.(PositionType)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected PositionType, got %v", value)
		}
		n.SetPositionType(v)
	case "display":
		v, ok := value.(Display)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected Display, got %v", value)
		}
		n.SetDisplay(v)
	case "direction":
		v, ok := value.(TextDirection)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected TextDirection, got %v", value)
		}
		n.SetDirection(v)
	case "writingMode":
		v, ok := value.(WritingMode)
		if !ok {
			if bagMode {
				return nil
			}
			return invalidValuef(key, "expected WritingMode, got %v", value)
		}
		n.SetWritingMode(v)

	default:
		if bagMode {
			return nil
		}
		return &UnknownProperty{Key: key}
	}
	return nil
}

func (n *Node) setSizeKey(field *Value, key string, value any, bagMode bool) error {
	v, err := toValue(value)
	if err != nil {
		if bagMode {
			return nil
		}
		return invalidValuef(key, "%v", err)
	}
	n.setValue(field, v)
	return nil
}

func (n *Node) setShorthand4(key string, value any, bagMode bool, top, right, bottom, left *Value) error {
	v, err := toValue(value)
	if err != nil {
		if bagMode {
			return nil
		}
		return invalidValuef(key, "%v", err)
	}
	n.setValue(top, v)
	n.setValue(right, v)
	n.setValue(bottom, v)
	n.setValue(left, v)
	return nil
}

func (n *Node) setShorthand2(key string, value any, bagMode bool, a, b *Value) error {
	v, err := toValue(value)
	if err != nil {
		if bagMode {
			return nil
		}
		return invalidValuef(key, "%v", err)
	}
	n.setValue(a, v)
	n.setValue(b, v)
	return nil
}

// toValue accepts a Value, a finite number, or a parseable string.
func toValue(value any) (Value, error) {
	switch x := value.(type) {
	case Value:
		return x, nil
	case string:
		return ParseValue(x)
	case float64:
		if !isDefinite(x) {
			return Undefined, invalidValuef("value", "non-finite number %v", x)
		}
		return Point(x), nil
	case int:
		return Point(float64(x)), nil
	default:
		return Undefined, invalidValuef("value", "unsupported type %T", value)
	}
}

func toFloat(value any) (float64, error) {
	switch x := value.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case string:
		v, err := ParseValue(x)
		if err != nil || v.Kind != ValuePoint {
			return 0, invalidValuef("value", "expected a numeric string, got %q", x)
		}
		return v.Magnitude, nil
	default:
		return 0, invalidValuef("value", "unsupported type %T", value)
	}
}
