package router

import (
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	ddhandler "duediligence_backend/internal/feature/duediligence/transport/handler"
	platformhandler "duediligence_backend/internal/platform/http/handler"
	"duediligence_backend/internal/platform/middleware"
)

// Options configures the parts of the router that depend on the environment.
type Options struct {
	PublicDir   string   // static assets served for unmatched GET/HEAD paths
	CORSOrigins []string // empty disables CORS
	Provider    string   // reported by /healthz
}

// NewRouter wires middleware, the due diligence route, health checks and static files.
func NewRouter(opts Options, dd *ddhandler.DueDiligenceHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// ブラウザから別オリジンで呼ぶ場合のみ有効化
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.HeaderRequestID},
			ExposeHeaders: []string{middleware.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}

	// 導通確認用
	health := platformhandler.NewHealth(opts.Provider)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	r.POST("/due-diligence", dd.Create)

	// 静的ファイル
	r.NoRoute(staticFiles(opts.PublicDir))

	return r
}

// staticFiles serves files under dir for GET and HEAD requests. A directory is
// served through its index.html and never listed; everything else is 404.
func staticFiles(dir string) gin.HandlerFunc {
	root := http.Dir(dir)
	return func(c *gin.Context) {
		if dir == "" || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		f, info, err := openStatic(root, c.Request.URL.Path)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		defer f.Close()
		http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	}
}

// openStatic opens name under root, resolving a directory to its index.html.
func openStatic(root http.FileSystem, name string) (http.File, fs.FileInfo, error) {
	name = path.Clean("/" + name)
	for _, p := range []string{name, path.Join(name, "index.html")} {
		f, err := root.Open(p)
		if err != nil {
			return nil, nil, err
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		if !info.IsDir() {
			return f, info, nil
		}
		f.Close()
	}
	return nil, nil, fs.ErrNotExist
}
