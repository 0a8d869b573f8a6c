package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jsonapi/pkg/cache"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/httpapi"
	"github.com/matzehuels/jsonapi/pkg/observability"
	"github.com/matzehuels/jsonapi/pkg/query"
	"github.com/matzehuels/jsonapi/pkg/render"
)

// newServeCmd creates the serve command: a demo server for a TOML-defined
// resource graph with full query support.
func newServeCmd() *cobra.Command {
	var (
		addr        string
		datasetPath string
		cacheDir    string
		cacheTTL    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a TOML-defined resource graph as a JSON:API endpoint",
		Long: `Serve a TOML-defined resource graph as a JSON:API endpoint.

Routes:
  GET /{type}                             resource collection
  GET /{type}/{id}                        single resource
  GET /{type}/{id}/relationships/{name}   resource linkage

Sparse fieldsets and includes from the request's query string are applied
to every response. With --cache-dir set, rendered responses are cached on
disk keyed by path and query string.

Example:
  jsonapi serve --dataset examples/blog.toml --addr :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			ds, err := loadDataset(datasetPath)
			if err != nil {
				return err
			}
			logger.Infof("loaded %d resources from %s", len(ds.nodes), datasetPath)

			var c cache.Cache
			if cacheDir != "" {
				if c, err = cache.NewFileCache(cacheDir); err != nil {
					return err
				}
				defer c.Close()
				logger.Infof("caching responses in %s (ttl %s)", cacheDir, cacheTTL)
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(ds, logger, c, cacheTTL),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return listen(cmd.Context(), srv, logger)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "TOML resource graph to serve")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache rendered responses in this directory")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", time.Minute, "time-to-live for cached responses")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}

// listen runs the server until the context is canceled, then shuts down
// gracefully.
func listen(ctx context.Context, srv *http.Server, logger *log.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

// newRouter builds the demo server's routes. A nil cache disables
// response caching.
func newRouter(ds *dataset, logger *log.Logger, c cache.Cache, ttl time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	if c != nil {
		r.Use(responseCache(c, cache.NewDefaultKeyer(), ttl))
	}

	r.Get("/{kind}", handleCollection(ds))
	r.Get("/{kind}/{id}", handleResource(ds))
	r.Get("/{kind}/{id}/relationships/{name}", handleRelationship(ds))
	return r
}

// responseCache serves 200 responses from the cache when possible and
// stores fresh ones after the handler runs. The key covers path and query
// string, so sparse fieldsets and includes get separate entries.
func responseCache(c cache.Cache, keyer cache.Keyer, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := keyer.ResponseKey(r.URL.Path, r.URL.RawQuery)

			if body, ok, err := c.Get(ctx, key); err == nil && ok {
				observability.Cache().OnCacheHit(ctx, "response")
				w.Header().Set("Content-Type", httpapi.ContentType)
				_, _ = w.Write(body)
				return
			}
			observability.Cache().OnCacheMiss(ctx, "response")

			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK {
				if err := c.Set(ctx, key, rec.body.Bytes(), ttl); err == nil {
					observability.Cache().OnCacheSet(ctx, "response", rec.body.Len())
				}
			}
		})
	}
}

// responseRecorder tees the response body so the cache middleware can
// store what the handler wrote.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	r.body.Write(p)
	return r.ResponseWriter.Write(p)
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Microsecond))
		})
	}
}

func handleCollection(ds *dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := fields.Parse(chi.URLParam(r, "kind"))
		if err != nil {
			httpapi.Error(w, err)
			return
		}
		q, err := httpapi.ParseQuery(r)
		if err != nil {
			httpapi.Error(w, err)
			return
		}

		d, err := render.Collection(applyPage(ds.byKind(kind), q.Page), q)
		if err != nil {
			httpapi.Error(w, err)
			return
		}
		_ = httpapi.Write(w, d)
	}
}

// applyPage slices items according to the requested page. Without a size
// the whole collection is one page.
func applyPage[T any](items []T, p *query.Page) []T {
	if p == nil || p.Size == 0 {
		return items
	}
	start := (p.Number - 1) * p.Size
	if start >= uint64(len(items)) {
		return nil
	}
	return items[start:min(start+p.Size, uint64(len(items)))]
}

func handleResource(ds *dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := fields.Parse(chi.URLParam(r, "kind"))
		if err != nil {
			httpapi.Error(w, err)
			return
		}
		q, err := httpapi.ParseQuery(r)
		if err != nil {
			httpapi.Error(w, err)
			return
		}

		n := ds.get(kind, chi.URLParam(r, "id"))
		if n == nil {
			writeNotFound(w, r)
			return
		}
		d, err := render.Object(n, q)
		if err != nil {
			httpapi.Error(w, err)
			return
		}
		_ = httpapi.Write(w, d)
	}
}

func handleRelationship(ds *dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := fields.Parse(chi.URLParam(r, "kind"))
		if err != nil {
			httpapi.Error(w, err)
			return
		}
		name, err := fields.Parse(chi.URLParam(r, "name"))
		if err != nil {
			httpapi.Error(w, err)
			return
		}

		n := ds.get(kind, chi.URLParam(r, "id"))
		if n == nil {
			writeNotFound(w, r)
			return
		}
		for _, rel := range n.rels {
			if rel.name != name {
				continue
			}
			if rel.toOne {
				var target render.Resource
				if len(rel.targets) > 0 {
					target = rel.targets[0]
				}
				ident, err := render.Ident(target, nil)
				if err != nil {
					httpapi.Error(w, err)
					return
				}
				_ = httpapi.Write(w, ident)
				return
			}
			idents, err := render.Idents(rel.targets, nil)
			if err != nil {
				httpapi.Error(w, err)
				return
			}
			_ = httpapi.Write(w, idents)
			return
		}
		writeNotFound(w, r)
	}
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	d := httpapi.ErrorDocument(http.StatusNotFound, "no resource at "+r.URL.Path)
	_ = httpapi.WriteStatus(w, http.StatusNotFound, d)
}
