package core

// WaitFor spins until done reports true. A limit of zero spins forever,
// otherwise WaitFor gives up after limit unsuccessful polls and returns false.
func WaitFor(done func() bool, limit uint32) bool {
	if limit == 0 {
		for !done() {
		}
		return true
	}

	for polls := uint32(0); polls < limit; polls++ {
		if done() {
			return true
		}
	}
	return false
}
