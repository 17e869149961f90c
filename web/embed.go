// Package web carries the HTML templates and JS assets compiled into the
// binary, so the server runs from a single file.
package web

import "embed"

//go:embed html js
var Assets embed.FS
