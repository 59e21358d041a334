// Package common holds the structured I/O helpers shared by every pipeline
// stage: YAML and JSON configuration documents, binary artifacts, directory
// bootstrapping and file size reporting.
//
// All helpers are stateless apart from the injected logger and filesystem,
// so a single Files value may be shared between goroutines as long as they
// do not write the same path. Concurrent writes to one path are not
// coordinated; the last writer wins.
package common
