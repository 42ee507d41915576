package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocaleNegotiation(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		want           string
	}{
		{name: "plain english", acceptLanguage: "en", want: "en"},
		{name: "regional variant", acceptLanguage: "es-MX", want: "es"},
		{name: "quality ordering", acceptLanguage: "fr-CA;q=0.9, en;q=0.8", want: "fr"},
		{name: "unsupported falls back", acceptLanguage: "zz", want: "en"},
		{name: "missing header falls back", acceptLanguage: "", want: "en"},
		{name: "garbage header falls back", acceptLanguage: ";;;", want: "en"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			handler := Locale("en", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LocaleFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tc.want {
				t.Fatalf("locale = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocaleCountryLookup(t *testing.T) {
	lookup := func(ip string) (string, error) { return "nl", nil }

	var country string
	handler := Locale("en", lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		country = CountryFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.10:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if country != "NL" {
		t.Fatalf("country = %q, want NL", country)
	}
}
