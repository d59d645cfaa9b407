package core

// IDGenerator produces opaque unique identifiers
type IDGenerator interface {
	NewID() string
}
