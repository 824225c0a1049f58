// Package summarize fetches timestamped transcripts through the summarize CLI.
//
// The extractor is invoked once per run as
//
//	summarize <ref> --extract --timestamps [extra args...]
//
// and its stdout is returned verbatim. A non-zero exit becomes a
// services.ToolError carrying the tool's stderr. There is no timeout and no
// retry; cancellation of the supplied context stops the child process.
package summarize
