package auth

// Level is the minimum identity a route requires
type Level int

const (
	ISKNOWN Level = iota
)
