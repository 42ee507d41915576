package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeKey struct{}
type countryKey struct{}

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

var supportedLocales = []language.Tag{
	language.English, // first tag is the matcher fallback
	language.Spanish,
	language.French,
}

// Locale negotiates a response locale from Accept-Language and stores it in
// the request context, along with a best-effort country code for logging.
// The country lookup is optional; pass nil when no GeoIP database is
// configured.
func Locale(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	matcher := language.NewMatcher(supportedLocales)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := negotiate(matcher, r.Header.Get("Accept-Language"), defaultLocale)
			ctx := context.WithValue(r.Context(), localeKey{}, locale)

			if lookup != nil {
				if ip := ClientIP(r); ip != "" {
					if country, err := lookup(ip); err == nil && country != "" {
						ctx = context.WithValue(ctx, countryKey{}, strings.ToUpper(country))
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func negotiate(matcher language.Matcher, acceptLanguage, fallback string) string {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	tag, _, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	base, _ := tag.Base()
	return base.String()
}

// LocaleFromContext returns the negotiated locale, or "en" outside a request.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok {
		return v
	}
	return "en"
}

// CountryFromContext returns the resolved ISO country code, or "".
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(countryKey{}).(string); ok {
		return v
	}
	return ""
}
