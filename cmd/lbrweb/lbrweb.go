// Binary lbrweb serves a browsable web gallery for a MinerVGA sprite
// library. Individual sprites come out as PNG or GIF, a composited
// sprite sheet as /sheet.png or /sheet.gif, and a plain text catalog as
// /catalog.txt. When no MINERVGA.LBR is found on disk, the embedded
// sample library is served instead so the binary works out of the box.
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-minervga/gallery"
	"badc0de.net/pkg/go-minervga/gallery/full"
	"badc0de.net/pkg/go-minervga/web"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	_ "golang.org/x/net/trace" // registers /debug/requests for the debug listener
)

var (
	listenAddress      = flag.String("listen_address", ":8080", "http listen address for lbrweb")
	debugListenAddress = flag.String("debug_listen_address", "", "if nonempty, an extra listener exposing net/http/pprof and x/net/trace endpoints")
	externalURLBase    = flag.String("external_url_base", "http://localhost:8080", "base URL for links in the generated sitemap")
	allowSample        = flag.Bool("allow_sample_library", true, "serve the embedded sample library if no MINERVGA.LBR is found")
)

func loadGallery() (*gallery.Gallery, error) {
	if p := full.PathFlagValue(full.FlagMinervgaLBRPath); p != "" {
		return full.FromFilePathFlags()
	}
	return full.FromDefaultPaths(*allowSample)
}

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	figure.NewFigure("lbrweb", "", true).Print()

	g, err := loadGallery()
	if err != nil {
		glog.Exitf("could not load a sprite library: %s", err)
	}
	glog.Infof("serving library %q with %d sprites", g.LibraryName(), g.SpriteCount())

	r := mux.NewRouter()
	h := web.NewHandler(g, full.PathFlagValue(full.FlagMinervgaLBRPath))
	h.RegisterRoutes(r)
	r.HandleFunc("/sitemap.xml", sitemapHandler(g))

	if *debugListenAddress != "" {
		go func() {
			glog.Error(http.ListenAndServe(*debugListenAddress, nil))
		}()
	}

	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stderr, r)))
}
