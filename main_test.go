// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the run if any test leaves producer or consumer
// goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
