package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"wordduel/internal/domain"
)

// Remote fetches content batches from the external content service over
// HTTP. Any failure (network, status, decode, empty batch) silently falls
// back to the built-in defaults so a session is never blocked on content.
type Remote struct {
	baseURL  string
	http     *fasthttp.Client
	timeout  time.Duration
	fallback *Fallback
	logger   *zap.Logger
}

// NewRemote creates a provider against the given content service base URL
func NewRemote(baseURL string, timeout time.Duration, logger *zap.Logger) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &fasthttp.Client{
			ReadTimeout:     timeout,
			WriteTimeout:    timeout,
			MaxConnsPerHost: 16,
		},
		timeout:  timeout,
		fallback: NewFallback(),
		logger:   logger,
	}
}

// Words fetches count story words, falling back to defaults on failure
func (r *Remote) Words(ctx context.Context, count int, difficulty string) []domain.Word {
	var words []domain.Word
	url := r.baseURL + "/words?count=" + strconv.Itoa(count) + "&difficulty=" + difficulty
	if err := r.getJSON(ctx, url, &words); err != nil || len(words) == 0 {
		r.logger.Warn("word fetch failed, using defaults", zap.Error(err))
		return r.fallback.Words(ctx, count, difficulty)
	}
	if len(words) > count {
		words = words[:count]
	}
	return words
}

// TranslationItems fetches count translation items, falling back to defaults
func (r *Remote) TranslationItems(ctx context.Context, count int, difficulty string, metaphorical bool) []domain.TranslationItem {
	var items []domain.TranslationItem
	url := r.baseURL + "/translations?count=" + strconv.Itoa(count) +
		"&difficulty=" + difficulty + "&metaphorical=" + strconv.FormatBool(metaphorical)
	if err := r.getJSON(ctx, url, &items); err != nil || len(items) == 0 {
		r.logger.Warn("translation fetch failed, using defaults", zap.Error(err))
		return r.fallback.TranslationItems(ctx, count, difficulty, metaphorical)
	}
	if len(items) > count {
		items = items[:count]
	}
	return items
}

func (r *Remote) getJSON(ctx context.Context, url string, out any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if until := time.Until(deadline); until < timeout {
			timeout = until
		}
	}

	if err := r.http.DoTimeout(req, resp, timeout); err != nil {
		return fmt.Errorf("content service request: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("content service status %d", resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("content service decode: %w", err)
	}
	return nil
}
