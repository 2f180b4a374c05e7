// Package profilepulse observes a rendered professional-profile page,
// extracts a small set of text fragments from it, asks a chat-completion
// service for a short summary, and injects the result back into the page —
// re-running automatically when the page navigates to a different profile
// without a full reload.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, openai/); orchestration lives
// in pipeline/.
package profilepulse
