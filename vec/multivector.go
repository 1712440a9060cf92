package vec

// MultiVector is an ordered sequence of Vector blocks, e.g. one block per
// spatial component of a vector field. The compressed matrices operate on
// flat vectors; CopyUnblockedTo and CopySplitFrom translate between the
// blocked and flat layouts around an apply call.
type MultiVector struct {
	blocks []*Vector
}

// NewMulti returns a MultiVector with zero-initialized blocks of the
// given sizes.
func NewMulti(blockSizes ...int) *MultiVector {
	blocks := make([]*Vector, len(blockSizes))
	for i, n := range blockSizes {
		blocks[i] = New(n)
	}
	return &MultiVector{blocks: blocks}
}

// MultiFrom returns a MultiVector aliasing the given blocks.
func MultiFrom(blocks ...*Vector) *MultiVector {
	return &MultiVector{blocks: blocks}
}

// NumBlocks returns the number of blocks.
func (mv *MultiVector) NumBlocks() int { return len(mv.blocks) }

// Block returns the i-th block. The block is shared, not copied.
func (mv *MultiVector) Block(i int) *Vector { return mv.blocks[i] }

// TotalSize returns the summed size of all blocks.
func (mv *MultiVector) TotalSize() int {
	total := 0
	for _, b := range mv.blocks {
		total += b.Size()
	}
	return total
}

// SetZero zeroes every block.
func (mv *MultiVector) SetZero() {
	for _, b := range mv.blocks {
		b.SetZero()
	}
}

// CopyUnblockedTo flattens the blocks into dst, block 0 first.
// Returns ErrSizeMismatch if dst.Size() != TotalSize().
func (mv *MultiVector) CopyUnblockedTo(dst *Vector) error {
	if dst.Size() != mv.TotalSize() {
		return ErrSizeMismatch
	}
	pos := 0
	for _, b := range mv.blocks {
		copy(dst.data[pos:pos+b.Size()], b.data)
		pos += b.Size()
	}
	return nil
}

// CopySplitFrom splits the flat src back into the blocks, block 0 first.
// Returns ErrSizeMismatch if src.Size() != TotalSize().
func (mv *MultiVector) CopySplitFrom(src *Vector) error {
	if src.Size() != mv.TotalSize() {
		return ErrSizeMismatch
	}
	pos := 0
	for _, b := range mv.blocks {
		copy(b.data, src.data[pos:pos+b.Size()])
		pos += b.Size()
	}
	return nil
}
