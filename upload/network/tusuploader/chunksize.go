package tusuploader

const (
	minChunkSizeBytes = 5 * 1024 * 1024
	maxChunkSizeBytes = 100 * 1024 * 1024
	targetChunkCount  = 20
)

// optimalChunkSizeBytes balances request count against the cost of retrying
// a failed chunk: small files upload in a handful of requests, huge files
// never exceed 100MB per PATCH.
func optimalChunkSizeBytes(totalSize int64) int64 {
	cs := totalSize / targetChunkCount

	if cs < minChunkSizeBytes {
		cs = minChunkSizeBytes
	}
	if cs > maxChunkSizeBytes {
		cs = maxChunkSizeBytes
	}

	return cs
}
