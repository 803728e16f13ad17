package api

// Cache-Control header values.
const (
	// CacheNoStore keeps clients from caching cards; stats change between renders.
	CacheNoStore = "no-store"
)
