package chi

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// pathParam binds a required simple-style path parameter, percent-decoded once.
func pathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		// chi matched the already-decoded path; re-escape so the binder's unescape
		// restores the segment instead of decoding it a second time.
		raw = url.PathEscape(raw)
	}
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, raw, &v,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	return v, err //nolint:wrapcheck // surfaced as a 400 by the caller
}

// queryString binds an optional form-style query parameter. Absent means "".
func queryString(r *http.Request, name string) (string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return "", err //nolint:wrapcheck // surfaced as a 400 by the caller
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// queryBool binds an optional boolean query parameter. Absent means nil.
func queryBool(r *http.Request, name string) (*bool, error) {
	var v *bool
	err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v)
	return v, err //nolint:wrapcheck // surfaced as a 400 by the caller
}

// queryStrings binds the named optional query parameters in order.
// On failure it writes a 400 and returns false.
func queryStrings(w http.ResponseWriter, r *http.Request, names ...string) ([]string, bool) {
	out := make([]string, len(names))
	for i, name := range names {
		v, err := queryString(r, name)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid query parameter "+name)
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// requirePath binds a path parameter, writing a 400 on failure.
func requirePath(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v, err := pathParam(r, name)
	if err != nil || v == "" {
		writeError(w, http.StatusBadRequest, "Invalid path parameter "+name)
		return "", false
	}
	return v, true
}
