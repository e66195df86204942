package flex

// FlexDirection controls the main axis of a container and whether it
// runs forward or in reverse.
type FlexDirection uint8

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// FlexWrap controls whether a container's items are forced onto one
// line or may wrap onto several.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify is the keyword set accepted by justify-content.
type Justify uint8

const (
	JustifyFlexStart Justify = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
	// Box Alignment L3 keywords, resolved to one of the above before
	// positioning.
	JustifyStart
	JustifyEnd
	JustifyNormal
	JustifyLeft
	JustifyRight
)

// Align is the keyword set shared by align-items, align-self and the
// per-line values consumed by align-content (align-content additionally
// allows Stretch, which Align already carries).
type Align uint8

const (
	AlignFlexStart Align = iota
	AlignFlexEnd
	AlignCenter
	AlignStretch
	AlignBaseline
	AlignAuto // align-self only: defer to the container's align-items
	// Box Alignment L3 keywords, resolved before positioning.
	AlignStart
	AlignEnd
	AlignNormal
	AlignSelfStart
	AlignSelfEnd
)

// AlignContentKeyword extends Align with the space-distribution
// keywords align-content needs but align-items/align-self don't.
type AlignContentKeyword uint8

const (
	ContentFlexStart AlignContentKeyword = iota
	ContentFlexEnd
	ContentCenter
	ContentStretch
	ContentSpaceBetween
	ContentSpaceAround
	ContentSpaceEvenly
	ContentStart
	ContentEnd
	ContentNormal
)

// Safety is the safe/unsafe overflow-alignment modifier from Box
// Alignment L3.
type Safety uint8

const (
	Unsafe Safety = iota
	Safe
)

// PositionType selects how a node participates in its parent's layout.
type PositionType uint8

const (
	Static PositionType = iota
	Relative
	Absolute
)

// Display toggles whether a node (and its subtree) participates in
// layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// TextDirection is the inline-base-direction of a node's text.
type TextDirection uint8

const (
	LTR TextDirection = iota
	RTL
)

// WritingMode selects the block/inline axis mapping. Only the
// horizontal mode maps directly to width=inline; vertical modes flip
// the main/cross axis mapping used by row/column directions.
type WritingMode uint8

const (
	HorizontalTB WritingMode = iota
	VerticalRL
	VerticalLR
)
