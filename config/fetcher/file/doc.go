// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once at construction and cached; every Fetch returns a
// fresh copy of the same bytes. Nothing is re-read from disk, which matches
// the one-document-per-invocation lifecycle of the configuration.
//
// Usage:
//
//	fetcher, err := file.Open("book.toml")
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Empty Documents:
//
// An empty file, or one holding only whitespace or comments, is the
// all-defaults document. It is served as is and accepts to d2.Default():
// path "d2", output-dir "d2", inline true and no optional settings. A
// missing file is never treated as empty.
//
// Error Handling:
//   - Construction fails if the file cannot be read or the path is a directory
//   - Errors include the file path
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
