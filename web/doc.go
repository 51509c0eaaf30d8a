// Package web serves the browser UI of a studio session: one HTML page and
// a small JSON API that the page calls.
package web
