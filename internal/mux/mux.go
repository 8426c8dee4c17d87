package mux

import (
	"context"
	"errors"
	"net/http"

	"pokerhands/internal/config"
	"pokerhands/pkg/poker/evaluator"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxVariantKey ctxKey = iota
	ctxVariantNameKey
	ctxRequestIDKey
)

// requestIDHeader is echoed on every response
const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string

	// store for testing purposes
	variantRouter *gmux.Router
}

type muxConfig struct {
	// maxHands is the most hands allowed in a single comparison
	maxHands int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		config: muxConfig{
			maxHands: config.Instance().Compare.MaxHands,
		},
	}

	this.Router.Use(this.requestIDMiddleware)

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/variant").Handler(this.getVariant())
		r.Methods(http.MethodPost).Path("/deal").Handler(this.postDeal())
	}

	// requires a known variant
	{
		this.variantRouter = this.Router.NewRoute().Subrouter()
		this.variantRouter.Use(this.variantMiddleware)

		r := this.variantRouter
		r.Methods(http.MethodPost).Path("/evaluate/{variant}").Handler(this.postEvaluate())
		r.Methods(http.MethodPost).Path("/compare/{variant}").Handler(this.postCompare())
	}

	return this
}

func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		logrus.WithFields(logrus.Fields{
			"requestID": id,
			"method":    r.Method,
			"path":      r.URL.Path,
		}).Debug("request")

		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// variantMiddleware resolves the {variant} path variable
func (m *Mux) variantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := gmux.Vars(r)["variant"]
		fn, err := evaluator.Lookup(name)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxVariantKey, fn)
		newCtx = context.WithValue(newCtx, ctxVariantNameKey, name)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func requestLogger(r *http.Request) *logrus.Entry {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return logrus.WithField("requestID", id)
}

// writeEvaluatorError maps an evaluation error to its HTTP status
func writeEvaluatorError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case evaluator.IsInputError(err):
		writeJSONError(w, http.StatusBadRequest, err)
	case errors.Is(err, evaluator.ErrUnknownVariant):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.Is(err, context.Canceled):
		requestLogger(r).WithError(err).Info("request canceled")
		writeJSONError(w, http.StatusServiceUnavailable, err)
	default:
		requestLogger(r).WithError(err).Error("could not evaluate")
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
