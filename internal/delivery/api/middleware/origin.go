package middleware

import (
	"net/http"
	"net/url"

	domainerrors "wedump/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const headerSecFetchSite = "Sec-Fetch-Site"

// SameOrigin rejects state changing requests sent by other sites. The process
// acts for whoever is signed in, so a page on another origin must not be able
// to drive it through the user's browser. Safe methods pass untouched.
//
// Sec-Fetch-Site is trusted when present ("same-origin", or "none" for
// requests the user started). Otherwise the Origin header must name the
// request host. Requests with neither header come from non-browser clients.
func SameOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		switch req.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return next(c)
		}

		if site := req.Header.Get(headerSecFetchSite); site != "" {
			if site != "same-origin" && site != "none" {
				return domainerrors.ErrCrossOrigin
			}

			return next(c)
		}

		if origin := req.Header.Get(echo.HeaderOrigin); origin != "" {
			parsed, err := url.Parse(origin)
			if err != nil || parsed.Host == "" || parsed.Host != req.Host {
				return domainerrors.ErrCrossOrigin
			}
		}

		return next(c)
	}
}
