package graph

import (
	"github.com/minio/highwayhash"
)

// 32-byte highwayhash key, fixed so fingerprints are stable across processes
var key = []byte("scriptgen0123456789ABCDEFscriptg")

// Hash computes a stable content fingerprint for generated or inspected text
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
