// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent producer/consumer tests: slot data is
// published through atomix journal flags, an ordering the detector cannot
// see, so it reports false positives.
const RaceEnabled = true
