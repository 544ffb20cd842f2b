package pushclient

import (
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// SetBaseURL sets the collection service base URL.
func (p *PushClient) SetBaseURL(baseURL string) {
	p.configLock.Lock()
	p.baseURL = baseURL
	p.configLock.Unlock()
}

// SetAPIKey sets the credential sent with every push.
func (p *PushClient) SetAPIKey(apiKey string) {
	p.configLock.Lock()
	p.apiKey = apiKey
	p.configLock.Unlock()
}

// SetTimeout bounds each push call, including connection setup.
func (p *PushClient) SetTimeout(timeout time.Duration) {
	p.configLock.Lock()
	p.timeout = timeout
	p.configLock.Unlock()
}

// AddHeader attaches a static header to every push.
func (p *PushClient) AddHeader(key string, value string) {
	p.configLock.Lock()
	p.headers[key] = value
	p.configLock.Unlock()
}

// SetCompression selects the body compression algorithm.
func (p *PushClient) SetCompression(algorithm types.CompressionAlgorithm) {
	p.configLock.Lock()
	p.compression = algorithm
	p.configLock.Unlock()
}
