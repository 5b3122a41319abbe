package middlewares

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func (m *Middlewares) RequestLogger(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"remote_addr": r.RemoteAddr,
				"status":      rec.statusCode,
				"duration":    time.Since(start).String(),
			}).Infof("%s | %s ==> %s", time.Now().UTC().Format(time.RFC850), r.Method, r.RequestURI)
		})
	}
}
