// Package domain is the vocabulary every board package shares: the sentinel
// errors that transports map to statuses, and ValidationError, which
// carries one message per rejected form field.
//
// The entities themselves live below it: project for projects and their
// list statuses, validation for form constraints and dragdrop for the drag
// and drop contract between cards and lists.
package domain
