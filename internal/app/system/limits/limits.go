// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFormSize caps ordinary form submissions (login, admin CRUD forms).
	// Listing descriptions and review text fit comfortably under this.
	MaxFormSize = 1 << 20 // 1 MB
)
