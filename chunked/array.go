package chunked

// Array is a contiguous sequence of values partitioned into ordered,
// non-overlapping chunks whose lengths sum to the total length. The
// chunk layout is fixed at construction; Rechunk produces a new Array
// over the same data. Values are never copied between blocks.
//
// The element type T is typically a scalar (float64) or, for
// leading-axis data, a row ([]float64).
type Array[T any] struct {
	data   []T
	chunks []int
}

// FromSlice wraps data in an Array partitioned by the given chunk
// lengths. With no chunk lengths, the whole slice becomes one chunk
// (or zero chunks when data is empty).
//
// Chunk lengths must be non-negative and sum to len(data); otherwise
// ErrBadChunks.
func FromSlice[T any](data []T, chunks ...int) (*Array[T], error) {
	if len(chunks) == 0 {
		if len(data) == 0 {
			return &Array[T]{data: data}, nil
		}
		chunks = []int{len(data)}
	}
	if !validChunks(chunks, len(data)) {
		return nil, ErrBadChunks
	}

	return &Array[T]{data: data, chunks: append([]int(nil), chunks...)}, nil
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Blocks returns the number of chunks.
func (a *Array[T]) Blocks() int { return len(a.chunks) }

// Chunks returns a copy of the per-chunk lengths along the leading axis.
func (a *Array[T]) Chunks() []int { return append([]int(nil), a.chunks...) }

// Values returns the underlying contiguous storage. The slice is
// shared with the Array and must be treated as read-only.
func (a *Array[T]) Values() []T { return a.data }

// Block returns a view of chunk i's data. The slice is shared with the
// Array and must be treated as read-only.
//
// Errors: ErrBlockIndex.
func (a *Array[T]) Block(i int) ([]T, error) {
	if i < 0 || i >= len(a.chunks) {
		return nil, ErrBlockIndex
	}
	off := offsets(a.chunks)

	return a.data[off[i]:off[i+1]], nil
}

// Rechunk returns a new Array over the same data under a new chunk
// layout along the leading axis. Other axes (rows' interiors, for
// leading-axis data) are untouched by construction.
//
// Errors: ErrNilArray, ErrBadChunks.
func (a *Array[T]) Rechunk(chunks []int) (*Array[T], error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if !validChunks(chunks, len(a.data)) {
		return nil, ErrBadChunks
	}

	return &Array[T]{data: a.data, chunks: append([]int(nil), chunks...)}, nil
}

// validChunks reports whether chunks are all non-negative and sum to
// total.
func validChunks(chunks []int, total int) bool {
	sum := 0
	for _, c := range chunks {
		if c < 0 {
			return false
		}
		sum += c
	}

	return sum == total
}

// offsets converts chunk lengths to cumulative start offsets, starting
// with 0; the result has one more entry than chunks, the last being
// the total length.
func offsets(chunks []int) []int {
	off := make([]int, len(chunks)+1)
	for i, c := range chunks {
		off[i+1] = off[i] + c
	}

	return off
}
