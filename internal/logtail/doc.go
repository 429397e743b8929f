// Package logtail reads the tail of weatherpane's log file for the in-app
// log overlay.
//
// Read keeps a ring buffer of the last maxLines lines, so memory is bounded
// by the window and not by the file. Parse decodes a record written by
// slog's TextHandler with go-logfmt into its time, level, message and
// attributes. Lines that are not slog records come back with only Message
// set.
//
// A missing log file is not an error: Read returns nil, nil.
package logtail
