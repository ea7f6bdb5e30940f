package owned

// node is a chain element. Once a node is reachable from a List it is never
// written again; mutations build new nodes instead.
type node[T any] struct {
	val  T
	next *node[T]
}

// get returns the node index links after n, or nil if the chain ends first.
func (n *node[T]) get(index int) *node[T] {
	for ; n != nil && index > 0; index-- {
		n = n.next
	}
	return n
}

// copyPrefix copies the values of the first count nodes of head into a
// fresh chain. It returns the copy, its last node, and the first
// node that was not copied. count must be > 0 and <= the chain length.
func copyPrefix[T any](head *node[T], count int) (first, last, rest *node[T]) {
	first = &node[T]{val: head.val}
	last = first
	rest = head.next
	for i := 1; i < count; i++ {
		last.next = &node[T]{val: rest.val}
		last = last.next
		rest = rest.next
	}
	return first, last, rest
}
