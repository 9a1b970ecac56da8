// Package apod models NASA's Astronomy Picture of the Day API and
// provides the HTTP client used by the rest of Cosmonaut.
//
// # Wire format
//
// The API is a single HTTPS GET endpoint driven by query parameters:
//
//	?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD&api_key=<key>   range fetch
//	?date=YYYY-MM-DD&api_key=<key>                             single fetch
//
// A range fetch returns a JSON array ordered ascending by date; a single
// fetch returns one JSON object. Fields: copyright (optional), date,
// explanation, hdurl (optional), media_type, service_version, title, url.
//
// # Ordering and filtering
//
// FetchRange reverses the API's ascending order so callers always see
// newest-first, and drops entries whose media_type is not "image".
// FetchSingle applies no media-type filter; the archive's single-date
// view shows whatever the API returns for that day.
//
// # Rate limiting
//
// Every request waits on a client-side token bucket so that fast
// scrolling cannot burn through NASA's per-key quota. The limiter is
// sized for the registered-key tier; DEMO_KEY users will still hit the
// upstream 429 eventually, which surfaces as a *fetch.NetworkError.
//
// # Errors
//
// Construction with a malformed endpoint fails with ErrInvalidURL.
// Transport failures and malformed payloads propagate unchanged from the
// fetch package as *fetch.NetworkError and *fetch.DecodeError. The
// client never retries.
package apod
