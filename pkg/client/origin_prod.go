//go:build production

package client

// DefaultBaseURL is the API origin of the production backend.
const DefaultBaseURL = "http://fs8sgk0w8wwk08o0kkwsww00.82.29.62.110.sslip.io/api"
