package main

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"os"
	"strings"

	"badc0de.net/pkg/go-minervga/gallery"
	"badc0de.net/pkg/go-minervga/gallery/full"
)

type SitemapURLImage struct {
	// xml.Name would be 'http://www.google.com/schemas/sitemap-image/1.1 image'

	Loc string `xml:"image:loc"` // image is the namespace 'http://www.google.com/schemas/sitemap-image/1.1'
}

type SitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod,omitempty"`

	Image []SitemapURLImage `xml:"image:image,omitempty"`
}

type SitemapURLSet struct {
	XMLName    xml.Name     `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	XMLNSImage string       `xml:"xmlns:image,attr"`
	URL        []SitemapURL `xml:"url,omitempty"` // up to 50k entries
}

func (e *SitemapURLSet) Write(w http.ResponseWriter, r *http.Request) {
	e.XMLNSImage = "http://www.google.com/schemas/sitemap-image/1.1"

	w.Header().Set("Content-Type", "application/xml")

	fmt.Fprintf(w, "%s", xml.Header)
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	err := enc.Encode(e)
	if err != nil {
		http.Error(w, "<error>could not encode sitemap</error>", http.StatusInternalServerError)
		return
	}
}

// spriteSitemap describes the gallery index page, annotated with every
// sprite render so image search can pick them up. The whole gallery is
// one HTML page, so the set holds a single url entry.
func spriteSitemap(g *gallery.Gallery, base, lbrPath string) *SitemapURLSet {
	base = strings.TrimSuffix(base, "/")

	u := SitemapURL{Loc: base + "/"}
	if st, err := os.Stat(lbrPath); err == nil {
		u.LastMod = st.ModTime().Format("2006-01-02")
	}
	for pos := 0; pos < g.SpriteCount(); pos++ {
		u.Image = append(u.Image, SitemapURLImage{Loc: fmt.Sprintf("%s/sprite/%d", base, pos)})
	}

	return &SitemapURLSet{URL: []SitemapURL{u}}
}

func sitemapHandler(g *gallery.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spriteSitemap(g, *externalURLBase, full.PathFlagValue(full.FlagMinervgaLBRPath)).Write(w, r)
	}
}
