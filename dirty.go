package flex

// markDirty: if the node isn't already dirty, set
// its dirty flag, clear its intrinsic-size and baseline caches (and
// any cached baselines on its computed layout), then recurse into the
// parent. suspendDirty (set by Batch) turns a run of setter calls into
// a single O(depth) propagation instead of one per setter.
func (n *Node) markDirty() {
	if n.suspendDirty {
		return
	}
	if n.isDirty {
		return
	}
	n.isDirty = true
	n.intrinsic.hasW = false
	n.intrinsic.hasH = false
	n.baselineC.has = false
	n.layout.FirstBaseline = 0
	n.layout.HasFirstBaseline = false
	n.layout.LastBaseline = 0
	n.layout.HasLastBaseline = false

	if n.parent != nil {
		n.parent.markDirty()
	}
}

// invalidateIntrinsicSize clears the intrinsic-size cache on n and
// propagates to every ancestor, independent of the dirty flag. Used
// when a measureFunc changes: the node's own
// position/size may still be correct relative to its parent, but any
// content-derived measurement is stale.
func (n *Node) invalidateIntrinsicSize() {
	for cur := n; cur != nil; cur = cur.parent {
		cur.intrinsic.hasW = false
		cur.intrinsic.hasH = false
	}
}

// invalidateBaseline clears the baseline cache on n and every
// ancestor, independent of the dirty flag.
func (n *Node) invalidateBaseline() {
	for cur := n; cur != nil; cur = cur.parent {
		cur.baselineC.has = false
		cur.layout.FirstBaseline = 0
		cur.layout.HasFirstBaseline = false
		cur.layout.LastBaseline = 0
		cur.layout.HasLastBaseline = false
	}
}
