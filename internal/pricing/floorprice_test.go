package pricing

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFloorClient(t *testing.T, handler http.HandlerFunc) *FloorPriceClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewFloorPriceClient(FloorPriceConfig{
		BaseURL:  server.URL,
		APIKey:   "secret-key",
		Operator: "izee",
	}, quietLogger())
}

func TestFloorPriceSingleResult(t *testing.T) {
	client := newFloorClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/v6" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "Bored Apes" {
			t.Errorf("unexpected name query %q", got)
		}
		if got := r.Header.Get("x-api-key"); got != "secret-key" {
			t.Errorf("unexpected api key header %q", got)
		}
		if got := r.Header.Get("accept"); got != "*/*" {
			t.Errorf("unexpected accept header %q", got)
		}
		_, _ = io.WriteString(w, `{"collections":[{"name":"Bored Apes","floorAsk":{"sourceDomain":"opensea","price":{"amount":{"decimal":12.5,"usd":20000.1,"native":12.5}}}}]}`)
	})

	got := client.Run(context.Background(), "Bored Apes", false)
	want := "The floor price for [Bored Apes] is [12.5]ETH and is on [opensea]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFloorPriceNotFound(t *testing.T) {
	client := newFloorClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"collections":[]}`)
	})

	got := client.Run(context.Background(), "Nonexistent", false)
	want := "There is no collection found for the name Nonexistent "
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFloorPriceVerbose(t *testing.T) {
	client := newFloorClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"collections":[
			{"name":"Apes","floorAsk":{"sourceDomain":"opensea","price":{"amount":{"decimal":3}}}},
			{"name":"Apes Kennel","floorAsk":{"sourceDomain":"blur"}}
		]}`)
	})

	got := client.Run(context.Background(), "Apes", true)
	want := "The floor price for [Apes] is [3]ETH and is on [opensea]\n" +
		"The floor price for [Apes Kennel] is [0]ETH and is on [blur]\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFloorPriceMissingPriceDefaultsToZero(t *testing.T) {
	client := newFloorClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"collections":[{"name":"Unlisted","floorAsk":{"sourceDomain":"opensea","price":null}}]}`)
	})

	got := client.Run(context.Background(), "Unlisted", false)
	want := "The floor price for [Unlisted] is [0]ETH and is on [opensea]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFloorPriceFailuresUseFallback(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		},
		"decode": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"collections":`)
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			client := newFloorClient(t, handler)
			got := client.Run(context.Background(), "Apes", false)
			if got != "Something went wrong contact izee" {
				t.Fatalf("unexpected fallback %q", got)
			}
		})
	}
}

func TestFloorPriceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewFloorPriceClient(FloorPriceConfig{BaseURL: baseURL, Operator: "izee"}, quietLogger())
	if got := client.Run(context.Background(), "Apes", false); got != client.FailureMessage() {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestFormatDecimal(t *testing.T) {
	cases := map[float64]string{
		12.5:   "12.5",
		0:      "0",
		3:      "3",
		0.0042: "0.0042",
	}
	for value, want := range cases {
		if got := formatDecimal(value); got != want {
			t.Fatalf("formatDecimal(%v) = %q, want %q", value, got, want)
		}
	}
}
