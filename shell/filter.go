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
	"strconv"

	"github.com/willf/bloom"
)

const (
	filterBits   = 1 << 16
	filterHashes = 5
)

// membershipFilter answers "definitely absent" for keys never inserted into
// a set. Erased keys stay in the filter, so a positive answer still has to
// be confirmed against the set itself.
type membershipFilter struct {
	bf *bloom.BloomFilter
}

func newMembershipFilter() *membershipFilter {
	return &membershipFilter{bf: bloom.New(filterBits, filterHashes)}
}

func (f *membershipFilter) add(k int) {
	f.bf.AddString(strconv.Itoa(k))
}

func (f *membershipFilter) mayContain(k int) bool {
	return f.bf.TestString(strconv.Itoa(k))
}

func (f *membershipFilter) reset() {
	f.bf.ClearAll()
}

// rebuild refills the filter from keys.
func (f *membershipFilter) rebuild(keys []int) {
	f.reset()
	for _, k := range keys {
		f.add(k)
	}
}
