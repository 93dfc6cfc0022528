//go:build !production

package client

// DefaultBaseURL is the API origin of a local development backend.
const DefaultBaseURL = "http://localhost:8000/api"
