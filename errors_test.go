// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringq"
)

// =============================================================================
// Error Functions Tests
// =============================================================================

// TestIsWouldBlock tests the IsWouldBlock classification, including wrapping.
func TestIsWouldBlock(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"ErrWouldBlock", ringq.ErrWouldBlock, true},
		{"iox.ErrWouldBlock", iox.ErrWouldBlock, true},
		{"wrapped", fmt.Errorf("push sample: %w", ringq.ErrWouldBlock), true},
		{"ErrBatchSize", ringq.ErrBatchSize, false},
		{"other error", errors.New("other"), false},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			if got := ringq.IsWouldBlock(tt.err); got != tt.want {
				t.Errorf("IsWouldBlock(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestIsSemantic tests the IsSemantic error classification function.
func TestIsSemantic(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"ErrWouldBlock", ringq.ErrWouldBlock, true},
		{"iox.ErrWouldBlock", iox.ErrWouldBlock, true},
		{"ErrBatchSize", ringq.ErrBatchSize, false},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			if got := ringq.IsSemantic(tt.err); got != tt.want {
				t.Errorf("IsSemantic(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestIsNonFailure tests the IsNonFailure error classification function.
func TestIsNonFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"ErrWouldBlock", ringq.ErrWouldBlock, true},
		{"iox.ErrWouldBlock", iox.ErrWouldBlock, true},
		{"ErrBatchSize", ringq.ErrBatchSize, false},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			if got := ringq.IsNonFailure(tt.err); got != tt.want {
				t.Errorf("IsNonFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
