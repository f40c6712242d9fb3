package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/campaign-leads-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra início e fim de cada requisição HTTP com um ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newStatusRecorder(w)
			startTime := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			if isDev {
				logDevCompletion(r, lrw.statusCode, elapsed)
			} else {
				logCompletion(r, correlationID, lrw.statusCode, elapsed)
			}
		})
	}
}

func logDevCompletion(r *http.Request, statusCode int, elapsed time.Duration) {
	symbol := "✓"
	if statusCode >= 400 {
		symbol = "✗"
	}
	msg := fmt.Sprintf("%s Completada em %s", symbol, formatDuration(elapsed))

	logger := log.L.WithFields(log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": statusCode,
	})
	logByStatus(logger, statusCode, msg, msg, msg)

	if elapsed > slowRequestThreshold {
		log.L.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, elapsed.Milliseconds())
	}
}

func logCompletion(r *http.Request, correlationID string, statusCode int, elapsed time.Duration) {
	fields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
		"duration_ms":    elapsed.Milliseconds(),
		"status_code":    statusCode,
	}
	logByStatus(log.L.WithFields(fields), statusCode,
		"Requisição finalizada com erro",
		"Requisição finalizada com aviso",
		"Requisição finalizada com sucesso")

	if elapsed > slowRequestThreshold {
		log.L.WithFields(fields).Warnf("Requisição lenta: %s", elapsed)
	}
}

func logByStatus(logger log.Logger, statusCode int, errMsg, warnMsg, okMsg string) {
	switch {
	case statusCode >= 500:
		logger.Error(errMsg)
	case statusCode >= 400:
		logger.Warn(warnMsg)
	default:
		logger.Info(okMsg)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder captura o status code escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{w, http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	s.statusCode = code
	s.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics em 500 e registra o stack trace
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					if log.IsDevelopment() {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("❌ PANIC na aplicação")
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger := log.L.WithFields(log.Fields{
							"correlation_id": log.GetCorrelationID(r.Context()),
							"panic_error":    err,
							"method":         r.Method,
							"path":           r.URL.Path,
						})
						logger.Error("Erro não tratado na aplicação")
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
