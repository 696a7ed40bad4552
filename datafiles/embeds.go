// +build go1.16

// Package datafiles embeds the data files go-minervga ships with: a
// small sample sprite library and the gallery page template.
package datafiles

import "embed" // at least "import _ "embed"" is required

//go:embed sample.lbr
var SampleLBR string

//go:embed gallerypage.html
var GalleryPageHTML string

//go:embed sample.lbr gallerypage.html
var Files embed.FS
