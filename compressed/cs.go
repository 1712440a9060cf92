// File: compressed/cs.go
package compressed

// csCore is the storage shared by CSR and CSC: a prefix-sum pointer
// array over major lines plus parallel minor-index and value arrays.
type csCore struct {
	majorDim, minorDim int
	ptr                []int
	index              []int
	value              []float64
}

func newCSCore(majorDim, minorDim int) csCore {
	return csCore{
		majorDim: majorDim,
		minorDim: minorDim,
		ptr:      make([]int, majorDim+1),
	}
}

func (c *csCore) nnz() int { return len(c.value) }

// buildFromTriplet fills the core from parallel triplet slices, where
// major[k]/minor[k] are already expressed in this core's orientation.
// Two counting-sort passes, O(nnz + majorDim + minorDim) total.
func (c *csCore) buildFromTriplet(major, minor []int, value []float64) {
	nnz := len(value)

	// Pass 1: bucket by minor index, merging duplicates in flight.
	// Duplicates share both coordinates, so they necessarily land in
	// the same minor bucket.
	bucketPtr := make([]int, c.minorDim+1)
	for _, mi := range minor {
		bucketPtr[mi+1]++
	}
	for i := 0; i < c.minorDim; i++ {
		bucketPtr[i+1] += bucketPtr[i]
	}
	cursor := make([]int, c.minorDim)
	copy(cursor, bucketPtr[:c.minorDim])

	// lastSeen[mj] is the position of the most recent entry written
	// with major index mj. It is only trusted when that position lies
	// inside the current bucket's filled region; anything else is a
	// stale marker from another bucket.
	scratchDim := c.majorDim
	if c.minorDim > scratchDim {
		scratchDim = c.minorDim
	}
	lastSeen := make([]int, scratchDim)
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	tmpMajor := make([]int, nnz)
	tmpValue := make([]float64, nnz)
	for k := 0; k < nnz; k++ {
		mi, mj := minor[k], major[k]
		if p := lastSeen[mj]; p >= bucketPtr[mi] && p < cursor[mi] {
			tmpValue[p] += value[k]
			continue
		}
		p := cursor[mi]
		tmpMajor[p] = mj
		tmpValue[p] = value[k]
		lastSeen[mj] = p
		cursor[mi]++
	}
	// After merging, each bucket's retained entries occupy
	// [bucketPtr[mi], cursor[mi]); the tail up to bucketPtr[mi+1] is
	// dead space the second pass never reads.

	// Pass 2: counting sort of the merged entries by major index.
	// Scanning the minor buckets in ascending order leaves every major
	// line sorted by minor index.
	for i := range c.ptr {
		c.ptr[i] = 0
	}
	for mi := 0; mi < c.minorDim; mi++ {
		for p := bucketPtr[mi]; p < cursor[mi]; p++ {
			c.ptr[tmpMajor[p]+1]++
		}
	}
	for i := 0; i < c.majorDim; i++ {
		c.ptr[i+1] += c.ptr[i]
	}
	out := make([]int, c.majorDim)
	copy(out, c.ptr[:c.majorDim])

	c.index = make([]int, c.ptr[c.majorDim])
	c.value = make([]float64, c.ptr[c.majorDim])
	for mi := 0; mi < c.minorDim; mi++ {
		for p := bucketPtr[mi]; p < cursor[mi]; p++ {
			q := out[tmpMajor[p]]
			c.index[q] = mi
			c.value[q] = tmpValue[p]
			out[tmpMajor[p]]++
		}
	}
}

// getAt returns the stored value at (majorLine, minorIdx), or zero.
// Linear scan of the line's segment.
func (c *csCore) getAt(majorLine, minorIdx int) float64 {
	for k := c.ptr[majorLine]; k < c.ptr[majorLine+1]; k++ {
		if c.index[k] == minorIdx {
			return c.value[k]
		}
	}
	return 0
}

// setAt stores value at (majorLine, minorIdx), inserting a new entry
// if the position is structurally absent. Insertion shifts the index
// and value arrays and bumps every later pointer — O(nnz).
func (c *csCore) setAt(majorLine, minorIdx int, value float64) {
	pos := c.ptr[majorLine+1]
	for k := c.ptr[majorLine]; k < c.ptr[majorLine+1]; k++ {
		if c.index[k] == minorIdx {
			c.value[k] = value
			return
		}
		if c.index[k] > minorIdx {
			pos = k
			break
		}
	}
	c.insertAt(majorLine, pos, minorIdx, value)
}

// addAt accumulates value at (majorLine, minorIdx), inserting like
// setAt when the position is structurally absent. Adding exact zero to
// an absent position is a no-op.
func (c *csCore) addAt(majorLine, minorIdx int, value float64) {
	pos := c.ptr[majorLine+1]
	for k := c.ptr[majorLine]; k < c.ptr[majorLine+1]; k++ {
		if c.index[k] == minorIdx {
			c.value[k] += value
			return
		}
		if c.index[k] > minorIdx {
			pos = k
			break
		}
	}
	if value == 0 {
		return
	}
	c.insertAt(majorLine, pos, minorIdx, value)
}

func (c *csCore) insertAt(majorLine, pos, minorIdx int, value float64) {
	c.index = append(c.index, 0)
	c.value = append(c.value, 0)
	copy(c.index[pos+1:], c.index[pos:])
	copy(c.value[pos+1:], c.value[pos:])
	c.index[pos] = minorIdx
	c.value[pos] = value
	for l := majorLine + 1; l <= c.majorDim; l++ {
		c.ptr[l]++
	}
}
