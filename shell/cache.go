// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shell

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultCacheTTL = 10 * time.Minute
	// Clean up expired renders every minute
	renderCacheCleanup = time.Minute
)

// renderCache keeps rendered views per set. Every mutation bumps the set's
// revision, so stale renders are never looked up again and simply expire.
type renderCache struct {
	c         *cache.Cache
	ttl       time.Duration
	revisions map[string]uint64
}

func newRenderCache(ttl time.Duration) *renderCache {
	return &renderCache{
		c:         cache.New(ttl, renderCacheCleanup),
		ttl:       ttl,
		revisions: make(map[string]uint64),
	}
}

func (rc *renderCache) key(name, view string) string {
	return fmt.Sprintf("%s@%d/%s", name, rc.revisions[name], view)
}

func (rc *renderCache) get(name, view string) (string, bool) {
	val, ok := rc.c.Get(rc.key(name, view))
	if !ok {
		return "", false
	}
	return val.(string), true
}

func (rc *renderCache) put(name, view, text string) {
	rc.c.Set(rc.key(name, view), text, rc.ttl)
}

func (rc *renderCache) invalidate(name string) {
	rc.revisions[name]++
}
