package storageclient

import "time"

// SetBucket sets the destination bucket for presigned uploads.
func (sc *StorageClient) SetBucket(bucket string) {
	sc.configLock.Lock()
	sc.bucket = bucket
	sc.configLock.Unlock()
}

// SetURLTTL sets how long issued upload URLs stay valid.
func (sc *StorageClient) SetURLTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	sc.configLock.Lock()
	sc.urlTTL = ttl
	sc.configLock.Unlock()
}
