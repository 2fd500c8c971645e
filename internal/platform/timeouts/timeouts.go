// Package timeouts defines the HTTP and storage time limits shared by
// tablekit services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StorageQuery caps a single storage read issued while rendering a page.
const StorageQuery = 2 * time.Second
