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

package set

import "github.com/pkg/errors"

// Query errors. They are returned wrapped with the failing operation and key,
// so match them with errors.Is.
var (
	// ErrEmpty is returned by Min and Max on a set with no keys.
	ErrEmpty = errors.New("set is empty")

	// ErrKeyNotFound is returned by Successor and Predecessor when the
	// argument is not stored in the set.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoSuccessor is returned by Successor for the maximum key.
	ErrNoSuccessor = errors.New("no successor")

	// ErrNoPredecessor is returned by Predecessor for the minimum key.
	ErrNoPredecessor = errors.New("no predecessor")
)
