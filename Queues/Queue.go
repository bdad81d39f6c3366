package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the current items.
	Shrink()
	//Clear the queue without releasing the backing array.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
