package llm

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LoggingProvider logs every request with its latency and token usage.
type LoggingProvider struct {
	inner  Provider
	logger *log.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, logger *log.Logger) Provider {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingProvider{inner: p, logger: logger.WithPrefix("llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	kv := []any{
		"purpose", PurposeFrom(ctx),
		"model", l.inner.ModelID(),
		"latency", time.Since(start).Round(time.Millisecond),
	}
	if req.Schema != nil {
		kv = append(kv, "schema", req.Schema.Name)
	}
	if err != nil {
		l.logger.Warn("request failed", append(kv, "error", err)...)
		return nil, err
	}

	kv = append(kv, "input_tokens", resp.Usage.InputTokens, "output_tokens", resp.Usage.OutputTokens)
	l.logger.Debug("request served", kv...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
