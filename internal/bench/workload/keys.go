package workload

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// keyStream yields a reproducible pseudo-random sequence per worker.
// Hashing (worker, counter) rather than sharing a generator keeps workers
// independent and runs repeatable for a given seed.
type keyStream struct {
	seed   uint32
	worker uint32
	n      uint64
	buf    [12]byte
}

func newKeyStream(seed uint32, worker int) *keyStream {
	return &keyStream{seed: seed, worker: uint32(worker)}
}

// next returns the next value in the stream.
func (k *keyStream) next() uint32 {
	binary.LittleEndian.PutUint32(k.buf[0:4], k.worker)
	binary.LittleEndian.PutUint64(k.buf[4:12], k.n)
	k.n++
	return murmur3.Sum32WithSeed(k.buf[:], k.seed)
}

// intn returns a value in [0, n). n must be positive.
func (k *keyStream) intn(n int) int {
	return int(uint64(k.next()) % uint64(n))
}
