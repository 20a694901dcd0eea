package core

// Entity is a stable, opaque identifier for a world object
// Zero is reserved and never allocated
type Entity uint64
