package dsdl

import (
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/flyiscool/uavdsdl/model"
)

// Constructor builds a fresh, zero-valued Message ready for DecodeMessage.
type Constructor func() Message

// shardCount is fixed: the registry is populated once, at process init
// time, by generated adapters' init() functions, and read very often
// afterwards. A small fixed shard count is enough to keep the read-mostly
// RWMutex contention low without the complexity of a resizable table.
const shardCount = 16

type shard struct {
	mu    sync.RWMutex
	byKey map[string]Constructor
}

var shards = func() [shardCount]*shard {
	var s [shardCount]*shard
	for i := range s {
		s[i] = &shard{byKey: make(map[string]Constructor)}
	}
	return s
}()

func shardFor(key string) *shard {
	h := xxhash.Sum64String(key)
	return shards[h%shardCount]
}

func registryKey(fullName string, major, minor uint8) string {
	return fullName + "." + strconv.Itoa(int(major)) + "." + strconv.Itoa(int(minor))
}

// Register associates a (fullName, major, minor) triple with a
// constructor, populating the registry that replaces runtime namespace
// walking. Generated adapters call this from their package init().
func Register(fullName string, major, minor uint8, ctor Constructor) {
	key := registryKey(fullName, major, minor)
	sh := shardFor(key)
	sh.mu.Lock()
	sh.byKey[key] = ctor
	sh.mu.Unlock()
}

// ClassOf looks up the constructor registered for d's (FullName,
// MajorVersion, MinorVersion) triple.
func ClassOf(d *model.Descriptor) (Constructor, bool) {
	key := registryKey(d.FullName, d.MajorVersion, d.MinorVersion)
	sh := shardFor(key)
	sh.mu.RLock()
	ctor, ok := sh.byKey[key]
	sh.mu.RUnlock()
	return ctor, ok
}

// ModelOf returns the static descriptor carried by an already-constructed
// adapter value. It is a thin wrapper that returns msg.Model(), kept as the
// counterpart of ClassOf so callers can resolve either direction
// (descriptor -> constructor, or instance -> descriptor).
func ModelOf(msg Message) *model.Descriptor {
	return msg.Model()
}
