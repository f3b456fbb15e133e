package uafacts_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/browserkit/pkg/uafacts"
)

func ExampleMiddleware() {
	r := chi.NewRouter()
	r.Use(uafacts.Middleware)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		f := uafacts.FromContext(req.Context())
		fmt.Fprintf(w, "mobile=%t chrome=%t", f.IsMobile(), f.IsChrome())
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Println(string(body))
	// Output: mobile=true chrome=true
}

func ExampleNew() {
	f := uafacts.New("Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1")

	fmt.Println(f.IsIPhone())
	fmt.Println(f.IsAnySafari())
	if v, ok := f.IOSVersion(); ok {
		fmt.Println(v)
	}
	// Output:
	// true
	// true
	// 14
}
