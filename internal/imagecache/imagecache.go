// Package imagecache maintains a bounded local cache of recipe images,
// inlined as data URLs so cached photos render offline.
package imagecache

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/budget-bites/budgetbites/internal/http"
	"github.com/budget-bites/budgetbites/internal/localstore"
)

const (
	cacheKey = "budget-bites-image-cache"
	version  = "v1"

	// MaxCacheSize bounds the total inlined payload size.
	MaxCacheSize = 10 << 20 // 10 MiB

	// Expiry is how long a cached image stays valid. Enforced lazily at
	// read time, not by a background sweep.
	Expiry = 7 * 24 * time.Hour

	sniffLen = 512
)

// CachedImage is a single inlined image entry.
type CachedImage struct {
	URL       string `json:"url"`
	DataURL   string `json:"dataUrl"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Size      int64  `json:"size"`
}

// aggregate is the persisted cache document. TotalSize always equals the sum
// of the entry sizes and never exceeds MaxCacheSize after a mutation.
type aggregate struct {
	Version     string                 `json:"version"`
	Images      map[string]CachedImage `json:"images"`
	TotalSize   int64                  `json:"totalSize"`
	LastCleanup int64                  `json:"lastCleanup"`
}

// Stats reports cache usage.
type Stats struct {
	TotalImages        int   `json:"totalImages"`
	TotalSize          int64 `json:"totalSize"`
	MaxSize            int64 `json:"maxSize"`
	UtilizationPercent int   `json:"utilizationPercent"`
}

// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	kv      *localstore.Store
	client  *http.HTTP
	log     *slog.Logger
	now     func() time.Time
	maxSize int64
	expiry  time.Duration

	// mu guards mem and every read-modify-write of the persisted
	// aggregate. The cache is shared by all request goroutines.
	mu  sync.Mutex
	mem *aggregate
}

type Option func(*Cache)

// WithClock injects the time source. Tests use it to simulate expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithMaxSize overrides the cache size bound.
func WithMaxSize(maxSize int64) Option {
	return func(c *Cache) {
		c.maxSize = maxSize
	}
}

func New(kv *localstore.Store, client *http.HTTP, logger *slog.Logger, opts ...Option) *Cache {
	c := &Cache{
		kv:      kv,
		client:  client,
		log:     logger,
		now:     time.Now,
		maxSize: MaxCacheSize,
		expiry:  Expiry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache fetches and stores the image at url on first call; subsequent calls
// return the stored payload without re-fetching until it expires. Fetch and
// storage failures are contained here and reported as ok=false; callers
// treat "not cacheable right now" as routine.
func (c *Cache) Cache(ctx context.Context, url string) (dataURL string, ok bool) {
	if url == "" {
		return "", false
	}
	if cached, hit := c.Get(ctx, url); hit {
		return cached, true
	}

	data, contentType, err := c.fetch(ctx, url)
	if err != nil {
		c.log.WarnContext(ctx, "failed to fetch image",
			slog.String("url", url), slog.Any("error", err))
		return "", false
	}

	size := int64(len(data))
	if size > c.maxSize {
		c.log.WarnContext(ctx, "image larger than entire cache, not storing",
			slog.String("url", url), slog.Int64("size", size))
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	agg := c.load(ctx)
	// Another goroutine may have cached the url while we were fetching.
	if cached, found := agg.Images[url]; found && !c.expired(cached) {
		return cached.DataURL, true
	}
	if agg.TotalSize+size > c.maxSize {
		c.makeSpace(agg, size)
	}

	entry := CachedImage{
		URL:       url,
		DataURL:   toDataURL(contentType, data),
		Timestamp: c.now().UnixMilli(),
		Size:      size,
	}
	agg.Images[url] = entry
	agg.TotalSize += size
	c.save(ctx, agg)

	return entry.DataURL, true
}

// Get returns the cached payload for url. An entry whose age exceeds the
// expiry window is removed and reported as a miss.
func (c *Cache) Get(ctx context.Context, url string) (dataURL string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	agg := c.load(ctx)
	cached, found := agg.Images[url]
	if !found {
		return "", false
	}

	if c.expired(cached) {
		c.remove(agg, url)
		c.save(ctx, agg)
		return "", false
	}
	return cached.DataURL, true
}

// Remove evicts a single entry. Absent urls are a no-op.
func (c *Cache) Remove(ctx context.Context, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	agg := c.load(ctx)
	if _, found := agg.Images[url]; !found {
		return
	}
	c.remove(agg, url)
	c.save(ctx, agg)
}

// ProgressFunc reports bulk prefetch progress as "image n of total".
type ProgressFunc func(n, total int)

// Prefetch caches each url strictly sequentially and reports how many were
// cached and how many failed.
func (c *Cache) Prefetch(ctx context.Context, urls []string, progress ProgressFunc) (cached, failed int) {
	for i, url := range urls {
		if progress != nil {
			progress(i+1, len(urls))
		}
		if url == "" {
			continue
		}
		if _, ok := c.Cache(ctx, url); ok {
			cached++
		} else {
			failed++
		}
	}
	return cached, failed
}

// Stats reports cache usage.
func (c *Cache) Stats(ctx context.Context) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	agg := c.load(ctx)
	utilization := 0
	if c.maxSize > 0 {
		utilization = int(float64(agg.TotalSize)/float64(c.maxSize)*100 + 0.5)
	}
	return Stats{
		TotalImages:        len(agg.Images),
		TotalSize:          agg.TotalSize,
		MaxSize:            c.maxSize,
		UtilizationPercent: utilization,
	}
}

// Clear drops every cached image.
func (c *Cache) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mem = &aggregate{
		Version:     version,
		Images:      map[string]CachedImage{},
		LastCleanup: c.now().UnixMilli(),
	}
	c.save(ctx, c.mem)
}

func (c *Cache) fetch(ctx context.Context, url string) (data []byte, contentType string, err error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := http.ExpectStatus2xx(resp); err != nil {
		return nil, "", err
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading image body: %w", err)
	}

	contentType = resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = nethttp.DetectContentType(data[:min(len(data), sniffLen)])
	}
	return data, contentType, nil
}

func (c *Cache) expired(img CachedImage) bool {
	return c.now().UnixMilli()-img.Timestamp > c.expiry.Milliseconds()
}

// makeSpace removes expired entries first, then evicts in ascending
// insertion time until the incoming size fits. Insertion time, not access
// time: an entry read often but inserted long ago still goes before a
// recently inserted one.
func (c *Cache) makeSpace(agg *aggregate, needed int64) {
	for url, img := range agg.Images {
		if c.expired(img) {
			c.remove(agg, url)
		}
	}
	if agg.TotalSize+needed <= c.maxSize {
		return
	}

	type stamped struct {
		url       string
		timestamp int64
	}
	oldest := make([]stamped, 0, len(agg.Images))
	for url, img := range agg.Images {
		oldest = append(oldest, stamped{url: url, timestamp: img.Timestamp})
	}
	sort.Slice(oldest, func(i, j int) bool {
		return oldest[i].timestamp < oldest[j].timestamp
	})

	for _, entry := range oldest {
		c.remove(agg, entry.url)
		if agg.TotalSize+needed <= c.maxSize {
			return
		}
	}
}

func (c *Cache) remove(agg *aggregate, url string) {
	if img, found := agg.Images[url]; found {
		agg.TotalSize -= img.Size
		delete(agg.Images, url)
	}
}

// load returns the in-memory aggregate, hydrating it from storage on first
// use. A missing, corrupt, or version-mismatched document is replaced by a
// fresh empty cache. The caller must hold mu.
func (c *Cache) load(ctx context.Context) *aggregate {
	if c.mem != nil {
		return c.mem
	}

	data, ok, err := c.kv.Get(ctx, cacheKey)
	if err == nil && ok {
		var agg aggregate
		if err := json.Unmarshal(data, &agg); err == nil && agg.Version == version {
			if agg.Images == nil {
				agg.Images = map[string]CachedImage{}
			}
			c.mem = &agg
			return c.mem
		}
		c.log.WarnContext(ctx, "discarding unreadable image cache")
	}

	c.mem = &aggregate{
		Version:     version,
		Images:      map[string]CachedImage{},
		LastCleanup: c.now().UnixMilli(),
	}
	return c.mem
}

// save persists the aggregate. On a quota rejection, expired entries are
// dropped and the write retried once. The caller must hold mu.
func (c *Cache) save(ctx context.Context, agg *aggregate) {
	data, err := json.Marshal(agg)
	if err != nil {
		c.log.WarnContext(ctx, "failed to encode image cache", slog.Any("error", err))
		return
	}

	if err := c.kv.Set(ctx, cacheKey, data); err != nil {
		c.log.WarnContext(ctx, "failed to save image cache", slog.Any("error", err))

		c.makeSpace(agg, 0)
		agg.LastCleanup = c.now().UnixMilli()
		data, err = json.Marshal(agg)
		if err != nil {
			return
		}
		if err := c.kv.Set(ctx, cacheKey, data); err != nil {
			c.log.ErrorContext(ctx, "failed to save image cache after cleanup", slog.Any("error", err))
		}
	}
}

func toDataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
