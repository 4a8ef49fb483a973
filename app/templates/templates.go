// Package templates embeds the HTML views rendered by the server.
package templates

import "embed"

//go:embed *.html layouts/*.html college/*.html student/*.html judge/*.html
var FS embed.FS
