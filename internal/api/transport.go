package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// loggingTransport wraps a RoundTripper and logs every request with a unique
// request id, mirroring the middleware-wrapping style of server-side handlers.
type loggingTransport struct {
	base http.RoundTripper
	log  *logrus.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	started := time.Now()

	fields := logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"path":       req.URL.Path,
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.log.WithFields(fields).WithError(err).WithField("duration", time.Since(started)).Warn("request failed")
		return nil, err
	}

	t.log.WithFields(fields).
		WithField("status", resp.StatusCode).
		WithField("duration", time.Since(started)).
		Debug("request completed")
	return resp, nil
}
