// Package websearch provides a CLI web search assistant. It turns a natural
// language question into an optimized search query, fans out to an ordered
// list of SearxNG instances, picks the most relevant result, extracts the
// page content, and streams a synthesized answer from a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., searxng/, openai/, fs/).
package websearch
