// Package heap implements generic min-heap functions over plain slices.
package heap

// Push adds item to x while preserving the min-heap invariant determined by
// the provided comparison function.
func Push[T any](x *[]T, item T, less func(a, b T) bool) {
	*x = append(*x, item)
	siftUp(*x, len(*x)-1, less)
}

// Pop removes the smallest element from x according to the provided
// comparison function. Pop panics if x is empty.
func Pop[T any](x *[]T, less func(a, b T) bool) T {
	smallest := (*x)[0]
	last := len(*x) - 1
	(*x)[0] = (*x)[last]
	*x = (*x)[:last]
	if last > 0 {
		siftDown(*x, 0, less)
	}
	return smallest
}

// Order shuffles x into min-heap ordering according to the provided
// comparison function. If len(x) > 0, the smallest element ends up at x[0].
func Order[T any](x []T, less func(a, b T) bool) {
	for i := len(x)/2 - 1; i >= 0; i-- {
		siftDown(x, i, less)
	}
}

func siftUp[T any](x []T, index int, less func(a, b T) bool) {
	for index > 0 {
		parent := (index - 1) / 2
		if !less(x[index], x[parent]) {
			break
		}
		x[parent], x[index] = x[index], x[parent]
		index = parent
	}
}

func siftDown[T any](x []T, index int, less func(a, b T) bool) {
	for {
		left := index*2 + 1
		if left >= len(x) {
			break
		}
		child := left
		if right := left + 1; right < len(x) && less(x[right], x[left]) {
			child = right
		}
		if !less(x[child], x[index]) {
			break
		}
		x[index], x[child] = x[child], x[index]
		index = child
	}
}
