package collector

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/query" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("apikey") == "" {
			t.Error("expected apikey query parameter")
		}
		body, ok := responses[r.URL.Query().Get("function")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestFetchRSI_ExtractsLatestValue(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"RSI": `{
			"Meta Data": {"1: Symbol": "TSLA"},
			"Technical Analysis: RSI": {
				"2026-08-28": {"RSI": "41.23"},
				"2026-08-27": {"RSI": "44.0081"},
				"2026-08-26": {"RSI": "47.5000"}
			}
		}`,
	})
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "testkey", "")
	got, err := f.FetchRSI("TSLA", 14, "daily")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 41.23 {
		t.Errorf("expected 41.23 from the most recent date, got %v", got)
	}
}

func TestFetchMovingAverage_ThousandsSeparator(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"EMA": `{
			"Technical Analysis: EMA": {
				"2026-08-28": {"EMA": "1,234.56"}
			}
		}`,
	})
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "testkey", "")
	got, err := f.FetchMovingAverage("TSLA", KindEMA, 50, "daily")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1234.56 {
		t.Errorf("expected 1234.56, got %v", got)
	}
}

func TestFetchDailyVolumes_OldestFirst(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"TIME_SERIES_DAILY": `{
			"Time Series (Daily)": {
				"2026-08-28": {"1. open": "1", "5. volume": "300"},
				"2026-08-27": {"1. open": "1", "5. volume": "200"},
				"2026-08-26": {"1. open": "1", "5. volume": "100"}
			}
		}`,
	})
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "testkey", "")
	got, err := f.FetchDailyVolumes("TSLA", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 200 || got[1] != 300 {
		t.Errorf("expected [200 300] oldest first, got %v", got)
	}
}

func TestFetch_MissingSectionIsFieldError(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"SMA": `{"Meta Data": {"1: Symbol": "TSLA"}}`,
	})
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "testkey", "")
	_, err := f.FetchMovingAverage("TSLA", KindSMA, 200, "daily")
	if err == nil {
		t.Fatal("expected error for missing section")
	}
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FieldError, got %T: %v", err, err)
	}
}

func TestFetch_MissingFieldIsFieldError(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"RSI": `{
			"Technical Analysis: RSI": {
				"2026-08-28": {"SomethingElse": "41.23"}
			}
		}`,
	})
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "testkey", "")
	_, err := f.FetchRSI("TSLA", 14, "daily")
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FieldError, got %T: %v", err, err)
	}
}

func TestFetch_RateLimitNoteIsAPIError(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"RSI": `{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`,
	})
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "testkey", "")
	_, err := f.FetchRSI("TSLA", 14, "daily")
	var aerr *APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
}

func TestFetch_MalformedNumberIsParseError(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"RSI": `{
			"Technical Analysis: RSI": {
				"2026-08-28": {"RSI": "not-a-number"}
			}
		}`,
	})
	defer srv.Close()

	f := NewAlphaVantageFetcher(srv.URL, "testkey", "")
	_, err := f.FetchRSI("TSLA", 14, "daily")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}
