package server

// Server is the lifecycle contract of the transports serving the game API.
//
// RunServer blocks until a shutdown signal arrives; Shutdown drains in-flight
// requests and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
