package dawg

import "errors"

var (
	ErrNodeOutOfRange = errors.New("node id out of range")
	ErrSizeMismatch   = errors.New("table size does not match declared size")
	ErrChildCount     = errors.New("child count does not match bitmask")
	ErrDanglingChild  = errors.New("child id does not name a node")
	ErrOrphanNode     = errors.New("node is not reachable from any parent")
	ErrRootMask       = errors.New("invalid root bitmask")
	ErrMalformedTable = errors.New("malformed table")
	ErrBadWord        = errors.New("word is not made of the letters a-z")
	ErrWordOrder      = errors.New("words not in alphabetical order")
)
