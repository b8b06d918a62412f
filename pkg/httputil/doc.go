// Package httputil provides HTTP utilities for fetching remote manifests.
//
// # Overview
//
// This package provides the infrastructure used when a diagram manifest is
// loaded from an http(s) URL instead of a local file:
//
//   - [Fetch]: GET with status-code classification and automatic retries
//   - [Retry]: Automatic retry with exponential backoff and jitter
//
// # Fetching
//
// [Fetch] performs a GET request and maps HTTP status codes to sentinel
// errors: 404 becomes [ErrNotFound], other failures wrap [ErrNetwork].
// Transient failures (connection errors, 5xx responses) are retried:
//
//	data, err := httputil.Fetch(ctx, nil, "https://example.com/diagram.toml")
//
// # Retry
//
// [Retry] wraps arbitrary operations with automatic retry for transient
// failures. Only errors wrapped with [RetryableError] trigger another
// attempt; everything else returns immediately. The backoff doubles after
// each failed attempt and is jittered to avoid thundering herd:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetchOnce()
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Request timeout: 10 seconds
//   - Max retries: 3
//   - Base backoff: 1 second
package httputil
