package space

import "errors"

var (
	// ErrClientNotFound is returned when a client id resolves to nothing.
	ErrClientNotFound = errors.New("client not found")
	// ErrDuplicateClient is returned when registering an existing client id.
	ErrDuplicateClient = errors.New("client already exists")
	// ErrRoomNotFound is returned when a room id resolves to nothing.
	ErrRoomNotFound = errors.New("room not found")
	// ErrDuplicateRoom is returned when adding an existing room id.
	ErrDuplicateRoom = errors.New("room already exists")
	// ErrRoomUnavailable is returned when the requested interval collides
	// with an existing booking.
	ErrRoomUnavailable = errors.New("room not available for the requested time")
	// ErrProductNotFound is returned when a product id resolves to nothing.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when adding an existing product id.
	ErrDuplicateProduct = errors.New("product already exists")
)
