package model

import "errors"

// Sentinel errors for every upstream failure the fetch and extraction
// paths can surface. Callers match with errors.Is; wrapping sites add
// context with fmt.Errorf and %w.
var (
	ErrNetwork       = errors.New("network or transport failure")
	ErrInvalidTicker = errors.New("ticker unknown to provider")
	ErrRateLimited   = errors.New("provider rate limit exhausted")
	ErrAPIKey        = errors.New("api key or entitlement problem")
	ErrNoData        = errors.New("no time series for ticker")
	ErrMalformedData = errors.New("malformed provider payload")
)

// ErrorKind is the closed set of failure kinds carried on an AnalysisResult.
type ErrorKind string

const (
	KindNone          ErrorKind = ""
	KindNetwork       ErrorKind = "network_error"
	KindInvalidTicker ErrorKind = "invalid_ticker"
	KindRateLimited   ErrorKind = "rate_limited"
	KindAPIKey        ErrorKind = "api_key_error"
	KindNoData        ErrorKind = "no_data"
	KindMalformedData ErrorKind = "malformed_data"
)

// KindOf maps an error from the fetch or extraction path to its kind.
// Anything outside the known taxonomy is treated as a contract defect.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrInvalidTicker):
		return KindInvalidTicker
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, ErrAPIKey):
		return KindAPIKey
	case errors.Is(err, ErrNoData):
		return KindNoData
	default:
		return KindMalformedData
	}
}
