package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Empty() bool
}

// ArrayQueue is a Queue backed by a growing circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
