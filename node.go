package flex

// MeasureFunc computes a leaf node's content size for a given
// available (width, height), either of which may be +Inf when the
// corresponding basis is indefinite. Must return finite values >= 0;
// out-of-range results are clamped by the caller.
type MeasureFunc func(n *Node, availWidth, availHeight float64) (width, height float64)

// BaselineFunc computes the distance from the top of a (width, height)
// content box to its baseline. Must return a value in [0, height].
type BaselineFunc func(n *Node, width, height float64) float64

// Layout holds the computed output of a layout pass.
type Layout struct {
	Left, Top, Width, Height          float64
	FirstBaseline, LastBaseline       float64
	HasFirstBaseline, HasLastBaseline bool
	Direction                         TextDirection
}

type intrinsicCache struct {
	w, h       float64
	hasW, hasH bool
}

type baselineCache struct {
	pos float64
	has bool
}

// Node is the core entity of the layout tree: style inputs, tree
// links, computed outputs and caches.
type Node struct {
	// Style inputs.
	flexDirection FlexDirection
	flexWrap      FlexWrap

	justifyContent Justify
	alignItems     Align
	alignSelf      Align
	alignContent   AlignContentKeyword

	alignItemsSafety   Safety
	alignSelfSafety    Safety
	alignContentSafety Safety

	flexGrow   float64
	flexShrink float64
	flexBasis  Value

	width, height       Value
	minWidth, minHeight Value
	maxWidth, maxHeight Value

	marginTop, marginRight, marginBottom, marginLeft     Value
	paddingTop, paddingRight, paddingBottom, paddingLeft Value
	borderTop, borderRight, borderBottom, borderLeft     Value
	top, right, bottom, left                             Value

	rowGap, columnGap Value

	positionType PositionType
	display      Display
	order        int

	direction   TextDirection
	writingMode WritingMode

	aspectRatio    float64
	hasAspectRatio bool

	measureFunc  MeasureFunc
	baselineFunc BaselineFunc

	// Tree links.
	parent   *Node
	children []*Node

	// Computed layout outputs.
	layout Layout

	// Caches.
	intrinsic    intrinsicCache
	baselineC    baselineCache
	isDirty      bool
	suspendDirty bool

	// Last CalculateLayout invocation against this node as root,
	// used to make repeated calls with the same parent size a no-op.
	hasLastParent                     bool
	lastParentWidth, lastParentHeight float64
}

// NewNode returns a node with every style field at its default: row
// direction, nowrap, flex-start justify, stretch align-items and
// align-content, unsafe overflow
// handling, grow 0, shrink 1, basis/min auto, static
// position, flex display, order 0, ltr/horizontal-tb, no aspect ratio.
func NewNode() *Node {
	return &Node{
		flexDirection: Row,
		flexWrap:      NoWrap,

		justifyContent: JustifyFlexStart,
		alignItems:     AlignStretch,
		alignSelf:      AlignAuto,
		alignContent:   ContentStretch,

		alignItemsSafety:   Unsafe,
		alignSelfSafety:    Unsafe,
		alignContentSafety: Unsafe,

		flexGrow:   0,
		flexShrink: 1,
		flexBasis:  Auto,

		width: Undefined, height: Undefined,
		minWidth: Auto, minHeight: Auto,
		maxWidth: Undefined, maxHeight: Undefined,

		marginTop: Undefined, marginRight: Undefined, marginBottom: Undefined, marginLeft: Undefined,
		paddingTop: Undefined, paddingRight: Undefined, paddingBottom: Undefined, paddingLeft: Undefined,
		borderTop: Undefined, borderRight: Undefined, borderBottom: Undefined, borderLeft: Undefined,
		top: Undefined, right: Undefined, bottom: Undefined, left: Undefined,

		rowGap: Point(0), columnGap: Point(0),

		positionType: Static,
		display:      DisplayFlex,
		order:        0,

		direction:   LTR,
		writingMode: HorizontalTB,

		isDirty: true,
	}
}

// NewNodeFromBag constructs a node from defaults, then applies a
// property bag. Unlike Style/Set, unknown keys are silently ignored
// and the bag bypasses dirtying (it runs before the node is attached
// to anything, so there is nothing to propagate to yet).
func NewNodeFromBag(bag map[string]any) *Node {
	n := NewNode()
	n.suspendDirty = true
	applyBag(n, bag)
	n.suspendDirty = false
	n.isDirty = true
	return n
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// GetChildCount returns the number of children.
func (n *Node) GetChildCount() int { return len(n.children) }

// GetChild returns the child at index i.
func (n *Node) GetChild(i int) *Node { return n.children[i] }

// AppendChild detaches c from any prior parent, then attaches it as
// n's last child and dirties n. It rejects cycles: c must not already
// be an ancestor of (or equal to) n.
func (n *Node) AppendChild(c *Node) error {
	if c == n {
		return &TreeMisuse{Reason: "node cannot be its own child"}
	}
	for anc := n.parent; anc != nil; anc = anc.parent {
		if anc == c {
			return &TreeMisuse{Reason: "child is an ancestor of the attaching node"}
		}
	}
	if c.parent != nil {
		c.parent.removeChildNode(c)
	}
	n.children = append(n.children, c)
	c.parent = n
	n.markDirty()
	return nil
}

// RemoveChild detaches c from n, if present, and dirties n.
func (n *Node) RemoveChild(c *Node) {
	if n.removeChildNode(c) {
		n.markDirty()
	}
}

func (n *Node) removeChildNode(c *Node) bool {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// GetComputedLeft/Top/Width/Height return the last-resolved layout
// output for the node.
func (n *Node) GetComputedLeft() float64   { return n.layout.Left }
func (n *Node) GetComputedTop() float64    { return n.layout.Top }
func (n *Node) GetComputedWidth() float64  { return n.layout.Width }
func (n *Node) GetComputedHeight() float64 { return n.layout.Height }

// GetComputedDirection returns the text direction the node was last
// laid out with.
func (n *Node) GetComputedDirection() TextDirection { return n.layout.Direction }

// GetBaseline returns the node's first baseline, matching GetFirstBaseline.
func (n *Node) GetBaseline() (pos float64, ok bool) { return n.GetFirstBaseline() }

// GetFirstBaseline returns the container's first line's first baseline.
func (n *Node) GetFirstBaseline() (float64, bool) {
	return n.layout.FirstBaseline, n.layout.HasFirstBaseline
}

// GetLastBaseline returns the container's last line's last baseline.
func (n *Node) GetLastBaseline() (float64, bool) {
	return n.layout.LastBaseline, n.layout.HasLastBaseline
}

// IsDirty reports whether the node (or a descendant) still needs a
// layout pass.
func (n *Node) IsDirty() bool { return n.isDirty }
