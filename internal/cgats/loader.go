package cgats

import (
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ResultPrefix marks cache keys of documents that were produced in memory
// rather than read from disk.
const ResultPrefix = "result:"

// DocumentCache provides thread-safe caching of parsed documents to avoid
// re-reading and re-parsing the same file.
//
// Documents read from disk are keyed by the exact path string given to
// Load. Documents produced by a comparison are registered with Store and
// keyed by a generated "result:<uuid>" id, so later calls can address them
// the same way as files.
//
// Cached documents are shared. Callers that need to modify one must Clone
// it first.
//
// # Memory Management
//
// Entries remain in memory until removed via Evict() or Clear().
//
// # Example Usage
//
//	cache := cgats.NewDocumentCache()
//	doc, err := cache.Load("/path/to/measurements.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id := cache.Store(result) // "result:6f1c..."
type DocumentCache struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentCache creates and initializes a new empty document cache.
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{
		docs: make(map[string]*Document),
	}
}

// Load retrieves a document from the cache or reads it from disk if not
// cached.
//
// Parameters:
//   - key: A file path, or a "result:<uuid>" id returned by Store.
//
// Returns:
//   - *Document: The parsed document.
//   - error: Non-nil if the file cannot be read or parsed, or if a result id
//     is unknown.
func (c *DocumentCache) Load(key string) (*Document, error) {
	c.mu.RLock()
	if doc, ok := c.docs[key]; ok {
		c.mu.RUnlock()
		return doc, nil
	}
	c.mu.RUnlock()

	if IsResultID(key) {
		return nil, &Error{Kind: KindFileError, Op: "load", Path: key, Detail: "no stored result with this id"}
	}

	doc, err := ReadFile(key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.docs[key] = doc
	c.mu.Unlock()

	return doc, nil
}

// LoadAll loads every key in order, stopping at the first failure.
func (c *DocumentCache) LoadAll(keys []string) ([]*Document, error) {
	docs := make([]*Document, 0, len(keys))
	for _, k := range keys {
		doc, err := c.Load(k)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Store registers an in-memory document and returns its "result:<uuid>" id.
func (c *DocumentCache) Store(doc *Document) string {
	id := ResultPrefix + uuid.NewString()

	c.mu.Lock()
	c.docs[id] = doc
	c.mu.Unlock()

	return id
}

// Len returns the number of cached documents.
func (c *DocumentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// Clear removes all documents from the cache.
func (c *DocumentCache) Clear() {
	c.mu.Lock()
	c.docs = make(map[string]*Document)
	c.mu.Unlock()
}

// Evict removes one entry. Unknown keys are ignored.
func (c *DocumentCache) Evict(key string) {
	c.mu.Lock()
	delete(c.docs, key)
	c.mu.Unlock()
}

// IsResultID reports whether key was produced by Store.
func IsResultID(key string) bool {
	return strings.HasPrefix(key, ResultPrefix)
}

// DocumentInfo summarizes a loaded document.
type DocumentInfo struct {
	// Source is the path or result id the document was loaded from.
	Source string `json:"source"`

	// Vendor is the detected dialect name, e.g. "Cgats" or "ColorBurst".
	Vendor string `json:"vendor"`

	SampleCount int      `json:"sample_count"`
	Fields      []string `json:"fields"`
	Metadata    []string `json:"metadata"`

	// HasLab is true when delta-E and swatch operations can use the document.
	HasLab bool `json:"has_lab"`

	// DeltaMethod names the delta-E field of a comparison result, if any.
	DeltaMethod string `json:"delta_method,omitempty"`

	// FileSizeBytes is 0 for in-memory results.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadDocumentInfo loads a document through cache and describes it.
func LoadDocumentInfo(cache *DocumentCache, key string) (*DocumentInfo, error) {
	doc, err := cache.Load(key)
	if err != nil {
		return nil, err
	}

	info := &DocumentInfo{
		Source:      key,
		Vendor:      doc.Vendor.String(),
		SampleCount: doc.SampleCount(),
		Fields:      doc.Layout.Names(),
		Metadata:    make([]string, len(doc.Metadata)),
		HasLab:      doc.HasLab(),
	}
	for i, rec := range doc.Metadata {
		info.Metadata[i] = rec.String()
	}
	if _, m, err := doc.DeltaMethod(); err == nil {
		info.DeltaMethod = m.String()
	}

	if !IsResultID(key) {
		stat, err := os.Stat(key)
		if err != nil {
			return nil, &Error{Kind: KindFileError, Op: "stat", Path: key, Err: err}
		}
		info.FileSizeBytes = stat.Size()
	}

	return info, nil
}
