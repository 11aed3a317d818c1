package mem

// DoubleBufferedSlice lets a producer append to Back while a consumer walks Front. Swap hands the
// accumulated elements to the consumer and recycles the old front's storage for the producer.
type DoubleBufferedSlice[T any] struct {
	Front, Back []T
}

func (db *DoubleBufferedSlice[T]) Swap() {
	clear(db.Front)
	db.Front, db.Back = db.Back, db.Front[:0]
}
