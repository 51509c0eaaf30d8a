// Package studio holds the presentation state of an image studio: the
// gallery of generated images, the in-flight flag, and the last user-facing
// error. A Session is created by the caller and passed to whatever surface
// renders it (the web UI, tests, or a CLI).
package studio
