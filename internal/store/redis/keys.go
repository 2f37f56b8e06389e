package redis

// CollectionKey returns the Redis key holding a collection.
func CollectionKey(prefix, name string) string {
	return prefix + name
}
