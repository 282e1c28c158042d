// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package client

import "time"

// Backoff maps a zero-based attempt number to the delay that should elapse
// before the next attempt is made.
type Backoff interface {
	Delay(attempt int) time.Duration
}

// Linear waits Base * (attempt + 1)
type Linear struct {
	Base time.Duration
}

func (l Linear) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return l.Base * time.Duration(attempt+1)
}

// Constant waits the same amount of time after every attempt
type Constant struct {
	Wait time.Duration
}

func (c Constant) Delay(int) time.Duration {
	return c.Wait
}
