package client

const (
	// Authentication endpoints; %s is the role (staff or student)
	endpointLogin = "/auth/login/%s" // POST
)
