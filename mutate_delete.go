package rax

// Delete removes key. If it was present, its value is returned as previous
// (the zero value if it was inserted via InsertNull) and deleted is true.
func (t *Tree[V]) Delete(key []byte) (previous V, deleted bool) {
	wr := t.walk(key, true)
	h := wr.stop

	if wr.consumed != len(key) || (h.compressed && wr.splitPos > 0) || !h.isKey {
		return previous, false
	}

	if !h.isNull {
		previous = h.value
	}
	h.isKey = false
	h.isNull = false
	var zero V
	h.value = zero
	t.numElements--

	switch len(h.children) {
	case 0:
		if h != t.root {
			t.cleanup(h, wr.link, wr.path)
		}
	case 1:
		if h == t.root {
			t.recompress(h, linkRef[V]{}, nil)
		} else {
			t.recompress(h, wr.link, wr.path)
		}
	}

	return previous, true
}

// cleanup walks back up from a just-un-keyed, childless vertex (leaf),
// freeing ancestors that can no longer justify their own existence — a
// non-key vertex with no remaining purpose once leaf is gone — until it
// reaches one that still has a reason to exist (the root, a key, or a
// branching vertex with more than one child), at which point leaf's last
// surviving ancestor is unlinked from it. path holds the slot each ancestor
// occupies in turn, recorded by the walk that found leaf. The root vertex
// struct is never itself discarded by this ascent (there is nothing above
// it to unlink it from), but it can still end up replaced afterward, by
// recompress, if unlinking leaves it a single-child non-key vertex.
func (t *Tree[V]) cleanup(leaf *vertex[V], leafSlot linkRef[V], path []linkRef[V]) {
	freed := leaf
	slot := leafSlot
	for {
		parent := slot.parent
		if parent == nil {
			return
		}
		if parent == t.root || parent.isKey || len(parent.children) > 1 {
			t.unlink(parent, slot.index, freed)
			if !parent.isKey && len(parent.children) == 1 {
				if parent == t.root {
					t.recompress(parent, linkRef[V]{}, nil)
				} else {
					parentSlot := path[len(path)-1]
					t.recompress(parent, parentSlot, path[:len(path)-1])
				}
			}
			return
		}
		t.freeVertex(parent)
		freed = parent
		if len(path) == 0 {
			return
		}
		slot = path[len(path)-1]
		path = path[:len(path)-1]
	}
}

// unlink removes child from parent's branch list (or collapses parent out
// of its compressed shape if that's what held the only child), freeing
// child.
func (t *Tree[V]) unlink(parent *vertex[V], idx int, child *vertex[V]) {
	if parent.compressed {
		parent.compressed = false
		parent.label = nil
		parent.children = nil
		parent.present = nil
	} else {
		parent.removeChildAt(idx)
	}
	t.freeVertex(child)
}

// recompress is entered either directly (a vertex lost its key-ness and was
// already down to exactly one child, with nothing unlinked) or from cleanup
// (a parent survived unlinking but is itself now a single-child non-key
// vertex). It first extends the merge candidacy as far up the ancestor
// chain as it safely can — stopping once it reaches the top of the tree, a
// key, or any vertex that isn't a single-child/compressed link — then
// merges the resulting run into one compressed vertex. The root
// participates in this like any other vertex: if the whole tree collapses
// down to one chain, the root itself is replaced by the merged vertex.
func (t *Tree[V]) recompress(start *vertex[V], startSlot linkRef[V], path []linkRef[V]) {
	for {
		p := startSlot.parent
		if p == nil || !mergeable(p) {
			break
		}
		if len(path) == 0 {
			break
		}
		start = p
		startSlot = path[len(path)-1]
		path = path[:len(path)-1]
	}
	t.mergeChain(start, startSlot)
}

// mergeChain walks down from start merging consecutive mergeable vertices
// (see vertex.mergeable) into a single compressed vertex, stopping once it
// would exceed vertexMaxSize or reaches a vertex that no longer qualifies.
// Only actually replaces anything if at least two vertices merge; a lone
// mergeable vertex with no mergeable child is left untouched.
func (t *Tree[V]) mergeChain(start *vertex[V], startSlot linkRef[V]) {
	size := start.size()
	count := 1
	v := start
	for v.size() > 0 {
		next := v.children[0]
		if !mergeable(next) || size+next.size() > vertexMaxSize {
			break
		}
		count++
		size += next.size()
		v = next
	}
	if count < 2 {
		return
	}

	label := make([]byte, 0, size)
	v = start
	for i := 0; i < count; i++ {
		label = append(label, v.label...)
		next := v.children[0]
		t.freeVertex(v)
		v = next
	}

	merged := &vertex[V]{compressed: true, label: label, children: []*vertex[V]{v}}
	t.numVertices++
	t.splice(startSlot, merged)
}
