/*
Package main shows the library's helpers wired into a small server.
*/
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	esccweb "github.com/east-sussex-county-council/Escc.Data.Web"
	"github.com/east-sussex-county-council/Escc.Data.Web/httpstatus"
	"github.com/east-sussex-county-council/Escc.Data.Web/logger"
	"github.com/east-sussex-county-council/Escc.Data.Web/middleware"
	"github.com/east-sussex-county-council/Escc.Data.Web/querystring"
)

type handler struct {
	log    logger.Logger
	signer *querystring.Signer
}

func main() {
	godotenv.Load()

	env := esccweb.EnvVarOrEnv("ENVIRONMENT", esccweb.Development)
	l := logger.New(logger.WithEnv(env.String()))

	signer, err := querystring.NewSigner([]byte(esccweb.EnvVarOrString("QUERYSTRING_KEY", "local-dev-key")))
	if err != nil {
		l.Fatal(err.Error(), nil)
		return
	}

	h := &handler{log: l, signer: signer}

	r := mux.NewRouter()
	r.HandleFunc("/old", h.moved)
	r.HandleFunc("/submit", h.submit).Methods(http.MethodPost)
	r.HandleFunc("/link", h.link)
	r.Handle("/download", middleware.Chain(
		http.HandlerFunc(h.download),
		middleware.VerifySignedQuery(signer, l),
	))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpstatus.NotFound(w)
	})

	srv := &http.Server{
		Addr: esccweb.EnvVarOrString("ADDR", "localhost:8080"),
		Handler: middleware.Chain(
			r,
			middleware.RateLimit(middleware.NewVisitors()),
			middleware.ForceHTTPS(env),
			middleware.RequestID(),
			middleware.InjectIPAddress(),
			middleware.LogRequest(l),
			middleware.CORS(esccweb.EnvVarOrString("CORS_ORIGIN", "")),
			middleware.CompatibilityMode(""),
		),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	l.Info("listening on "+srv.Addr, nil)
	if err := srv.ListenAndServe(); err != nil {
		l.Fatal(err.Error(), nil)
	}
}

// moved marks an old URL as permanently replaced.
func (h *handler) moved(w http.ResponseWriter, r *http.Request) {
	if err := httpstatus.MovedPermanently(w, r, "/new"); err != nil {
		h.log.Error(err.Error(), &logger.LogContext{Request: r, Error: err})
		httpstatus.InternalServerError(w)
	}
}

// submit sends the client on to the result of its POST.
func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := httpstatus.SeeOther(w, r, "/thanks"); err != nil {
		h.log.Error(err.Error(), &logger.LogContext{Request: r, Error: err})
		httpstatus.InternalServerError(w)
	}
}

// link hands out a signed download URL valid for an hour.
func (h *handler) link(w http.ResponseWriter, r *http.Request) {
	u := *r.URL
	u.Path = "/download"
	u.RawQuery = "file=report.pdf"

	signed, err := h.signer.SignWithExpiry(&u, time.Hour)
	if err != nil {
		h.log.Error(err.Error(), &logger.LogContext{Request: r, Error: err})
		httpstatus.InternalServerError(w)
		return
	}

	fmt.Fprintln(w, signed.String())
}

// download sits behind VerifySignedQuery; reaching it means the link was good.
func (h *handler) download(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "sending %s\n", r.URL.Query().Get("file"))
}
