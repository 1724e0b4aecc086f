// Package web embeds the HTML templates and static files served by the
// portfolio.
package web

import "embed"

//go:embed templates/*.html static/*
var ContentFS embed.FS
