package lock

import (
	"context"
	"hash/fnv"
	"sync"
)

// KeyLocker serializes critical sections per logical key. The toggle path
// relies on it so that two concurrent toggles for the same (user, target)
// cannot both observe "edge absent" and insert twice.
type KeyLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

const shardCount = 256

// KeyedMutex is the in-process KeyLocker. Keys are hashed onto a fixed set of
// mutex shards; unrelated keys may share a shard, which costs contention but
// never correctness.
type KeyedMutex struct {
	shards [shardCount]sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

func (k *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	h := fnv.New32a()
	h.Write([]byte(key))
	mu := &k.shards[h.Sum32()%shardCount]
	mu.Lock()
	return mu.Unlock, nil
}
