// Package embedkit provides the shared helpers behind an HTML metadata
// extractor: it reads meta and link tags from parsed documents, merges the
// values reported by several metadata providers into ranked candidate lists,
// and renders small HTML fragments for embedding media.
//
// This package contains domain types, interfaces and pure functions following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/, url/,
// html/, slog/).
package embedkit
