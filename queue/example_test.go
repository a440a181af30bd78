package queue_test

import (
	"fmt"

	"github.com/pwalczak/alglib/queue"
)

// ExampleListQueue demonstrates FIFO ordering.
func ExampleListQueue() {
	q := queue.NewListQueue[string]()
	q.Enqueue("first")
	q.Enqueue("second")
	q.Enqueue("third")

	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	// Output:
	// first
	// second
	// third
}

// ExampleCircularQueue demonstrates the ring wrapping: after a dequeue, a
// further enqueue reuses the vacated slot without moving any element.
func ExampleCircularQueue() {
	q := queue.NewCircularQueue[int](3)
	_ = q.Enqueue(1)
	_ = q.Enqueue(2)
	_ = q.Enqueue(3)

	v, _ := q.Dequeue()
	fmt.Println("dequeued:", v)

	_ = q.Enqueue(4) // wraps into the slot 1 occupied
	front, _ := q.PeekFront()
	rear, _ := q.PeekRear()
	fmt.Println("front:", front, "rear:", rear)

	// Output:
	// dequeued: 1
	// front: 2 rear: 4
}
