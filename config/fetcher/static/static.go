// Package static provides an in-memory DataFetcher for documents the caller already holds.
package static

// Fetcher implements config.DataFetcher over a fixed byte slice.
type Fetcher struct {
	data []byte
}

// NewFetcher copies data so later changes by the caller are not observed.
func NewFetcher(data []byte) *Fetcher {
	return &Fetcher{data: append([]byte(nil), data...)}
}

// FromString is NewFetcher for string documents.
func FromString(document string) *Fetcher {
	return &Fetcher{data: []byte(document)}
}

// Fetch returns a copy of the document.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
