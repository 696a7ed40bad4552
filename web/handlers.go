// Package web serves a decoded sprite library over HTTP: single
// sprites as PNG or GIF, scaled thumbnails, contact sheets, the
// catalog listing and a small HTML gallery.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"image"
	"image/gif"
	"image/png"
	"net/http"
	"os"
	"strconv"

	"github.com/andybons/gogif"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/nfnt/resize"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-minervga/catalog"
	"badc0de.net/pkg/go-minervga/compositor"
	"badc0de.net/pkg/go-minervga/datafiles"
	"badc0de.net/pkg/go-minervga/gallery"
)

const (
	defaultSpriteScale = 4
	maxSpriteScale     = 16
	defaultThumbW      = 64
	defaultThumbH      = 96
)

type Handler struct {
	g *gallery.Gallery

	lbrPath string
	page    *template.Template
}

// NewHandler constructs a web handler serving the passed gallery. The
// library path, when non-empty, only feeds Last-Modified headers.
func NewHandler(g *gallery.Gallery, lbrPath string) *Handler {
	h := &Handler{
		g:       g,
		lbrPath: lbrPath,
		page:    template.Must(template.New("gallerypage").Parse(datafiles.GalleryPageHTML)),
	}
	return h
}

// spritePos pulls the sprite position out of the route and resolves it
// against the gallery, writing the HTTP error itself when it fails.
func (h *Handler) spritePos(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	pos, err := strconv.Atoi(vars["idx"])
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return 0, false
	}
	if pos < 0 || pos >= h.g.SpriteCount() {
		http.Error(w, "no such sprite", http.StatusNotFound)
		return 0, false
	}
	return pos, true
}

// scaleParam reads ?scale=, clamped to [1,maxSpriteScale].
func scaleParam(r *http.Request, def int) int {
	scale := def
	if s := r.URL.Query().Get("scale"); s != "" {
		scale, _ = strconv.Atoi(s)
		// ignore invalid scale
	}
	if scale < 1 {
		scale = 1
	}
	if scale > maxSpriteScale {
		scale = maxSpriteScale
	}
	return scale
}

// writeCacheHeaders emits the shared caching headers. Returns true if
// the request was satisfied with a 304 and the handler should stop.
func (h *Handler) writeCacheHeaders(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	if s, err := os.Stat(h.lbrPath); err == nil {
		w.Header().Set("Last-Modified", s.ModTime().Format(http.TimeFormat))
	}
	return false
}

func (h *Handler) spriteHandler(w http.ResponseWriter, r *http.Request) {
	pos, ok := h.spritePos(w, r)
	if !ok {
		return
	}
	scale := scaleParam(r, defaultSpriteScale)

	generation := 1 // bump if the way we generate it changes
	mime := "image/png"
	etag := fmt.Sprintf(`W/"sprite:%d:%08x:%d:%d:%s"`, generation, h.g.Signature(), pos, scale, mime)
	if h.writeCacheHeaders(w, r, etag) {
		return
	}

	img, err := h.g.SpriteImage(pos, scale)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

func (h *Handler) spriteGIFHandler(w http.ResponseWriter, r *http.Request) {
	pos, ok := h.spritePos(w, r)
	if !ok {
		return
	}

	generation := 1 // bump if the way we generate it changes
	mime := "image/gif"
	etag := fmt.Sprintf(`W/"sprite:%d:%08x:%d:%s"`, generation, h.g.Signature(), pos, mime)
	if h.writeCacheHeaders(w, r, etag) {
		return
	}

	// Sprites live on a fixed 16-color palette, so the GIF gets the
	// exact palette with no quantizer pass.
	img, err := h.g.PalettedSpriteImage(pos)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if err := gif.Encode(w, img, nil); err != nil {
		glog.Errorf("error encoding sprite %d gif: %v", pos, err)
	}
}

func (h *Handler) thumbHandler(w http.ResponseWriter, r *http.Request) {
	pos, ok := h.spritePos(w, r)
	if !ok {
		return
	}

	tw, th := defaultThumbW, defaultThumbH
	if s := r.URL.Query().Get("w"); s != "" {
		tw, _ = strconv.Atoi(s)
	}
	if s := r.URL.Query().Get("h"); s != "" {
		th, _ = strconv.Atoi(s)
	}
	if tw < 1 || tw > 512 {
		tw = defaultThumbW
	}
	if th < 1 || th > 512 {
		th = defaultThumbH
	}

	generation := 1 // bump if the way we generate it changes
	mime := "image/png"
	etag := fmt.Sprintf(`W/"thumb:%d:%08x:%d:%d.%d:%s"`, generation, h.g.Signature(), pos, tw, th, mime)
	if h.writeCacheHeaders(w, r, etag) {
		return
	}

	img, err := h.g.SpriteImage(pos, 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// Nearest neighbor keeps the pixel art crisp.
	thumb := resize.Thumbnail(uint(tw), uint(th), img, resize.NearestNeighbor)

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, thumb)
}

// sheetParams reads the contact sheet's query params.
func sheetParams(r *http.Request) (scale, perRow, pad int) {
	scale = scaleParam(r, defaultSpriteScale)
	perRow = compositor.DefaultPerRow
	pad = compositor.DefaultPadding
	if s := r.URL.Query().Get("per_row"); s != "" {
		perRow, _ = strconv.Atoi(s)
	}
	if s := r.URL.Query().Get("pad"); s != "" {
		pad, _ = strconv.Atoi(s)
	}
	if perRow < 1 || perRow > 100 {
		perRow = compositor.DefaultPerRow
	}
	if pad < 0 || pad > 64 {
		pad = compositor.DefaultPadding
	}
	return scale, perRow, pad
}

func (h *Handler) sheet(w http.ResponseWriter, scale, perRow, pad int) (image.Image, bool) {
	imgs, err := h.g.RenderAll(scale)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return compositor.CompositeSheet(imgs, perRow, pad, nil), true
}

func (h *Handler) sheetHandler(w http.ResponseWriter, r *http.Request) {
	scale, perRow, pad := sheetParams(r)

	generation := 1 // bump if the way we generate it changes
	mime := "image/png"
	etag := fmt.Sprintf(`W/"sheet:%d:%08x:%d.%d.%d:%s"`, generation, h.g.Signature(), scale, perRow, pad, mime)
	if h.writeCacheHeaders(w, r, etag) {
		return
	}

	sheet, ok := h.sheet(w, scale, perRow, pad)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, sheet)
}

func (h *Handler) sheetGIFHandler(w http.ResponseWriter, r *http.Request) {
	scale, perRow, pad := sheetParams(r)

	generation := 1 // bump if the way we generate it changes
	mime := "image/gif"
	etag := fmt.Sprintf(`W/"sheet:%d:%08x:%d.%d.%d:%s"`, generation, h.g.Signature(), scale, perRow, pad, mime)
	if h.writeCacheHeaders(w, r, etag) {
		return
	}

	sheet, ok := h.sheet(w, scale, perRow, pad)
	if !ok {
		return
	}

	// The sheet is RGBA after compositing, so it goes through the
	// quantizer; 17 colors in, at most 255 out, nothing lost.
	pal := image.NewPaletted(sheet.Bounds(), nil)
	quantizer := gogif.MedianCutQuantizer{NumColor: 255}
	quantizer.Quantize(pal, sheet.Bounds(), sheet, image.ZP)

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if err := gif.Encode(w, pal, nil); err != nil {
		glog.Errorf("error encoding sheet gif: %v", err)
	}
}

func (h *Handler) catalogHandler(w http.ResponseWriter, r *http.Request) {
	lib := h.g.Library()
	if lib == nil {
		http.Error(w, "no library loaded", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := catalog.Write(w, lib); err != nil {
		glog.Errorf("error writing catalog: %v", err)
	}
}

type pageSprite struct {
	Pos    int
	Index  int
	Name   string
	Width  int
	Height int
	Thumb  template.URL
}

type pageData struct {
	Name    string
	Count   int
	Sprites []pageSprite
	Diags   []string
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	generation := 1 // bump if the way we generate it changes
	mime := "text/html; charset=utf-8"
	etag := fmt.Sprintf(`W/"gallery:%d:%08x:%s"`, generation, h.g.Signature(), "text/html")
	if h.writeCacheHeaders(w, r, etag) {
		return
	}

	data := pageData{
		Name:  h.g.LibraryName(),
		Count: h.g.SpriteCount(),
	}
	for pos := 0; pos < h.g.SpriteCount(); pos++ {
		rec, err := h.g.Sprite(pos)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		img, err := h.g.SpriteImage(pos, 2)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.Sprites = append(data.Sprites, pageSprite{
			Pos:    pos,
			Index:  rec.Index,
			Name:   rec.Name,
			Width:  rec.Width,
			Height: rec.Height,
			Thumb:  template.URL(dataurl.EncodeBytes(buf.Bytes())),
		})
	}
	for _, d := range h.g.Diags() {
		data.Diags = append(data.Diags, d.String())
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if err := h.page.Execute(w, data); err != nil {
		glog.Errorf("error executing gallery page template: %v", err)
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/sprite/{idx:[0-9]+}", h.spriteHandler)
	r.HandleFunc("/sprite/{idx:[0-9]+}.gif", h.spriteGIFHandler)
	r.HandleFunc("/thumb/{idx:[0-9]+}", h.thumbHandler)
	r.HandleFunc("/sheet.png", h.sheetHandler)
	r.HandleFunc("/sheet.gif", h.sheetGIFHandler)
	r.HandleFunc("/catalog.txt", h.catalogHandler)
}
