// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retry holds the retry decisions of the batch submission client:
// how a remote status is classified, how long to wait before the next
// attempt and when to give up.
//
// A [Policy] is immutable configuration. Each submission creates its own
// [State] via [Policy.NewState], so concurrent submissions never share
// attempt counters or backoff.
//
// Rate-limited attempts use the Retry-After header (integer seconds) as the
// wait, falling back to the last known backoff when the header is absent or
// malformed. Server errors wait linearly: base × attempts so far.
package retry
