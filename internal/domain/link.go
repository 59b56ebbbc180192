package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// The /-/editor endpoint identifies the calling integration by name and
// protocol version. "Emacs"/"1" is what the server expects from this family
// of clients.
const (
	editorName    = "Emacs"
	editorVersion = "1"
)

// BuildEditorURL formats the deep link for the "open in editor" endpoint.
// Parameter order is fixed so produced links are reproducible byte for byte.
func BuildEditorURL(baseURL, remoteURL, branch, file string, r Region) (string, error) {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString("/-/editor?remote_url=")
	b.WriteString(url.QueryEscape(remoteURL))
	b.WriteString("&branch=")
	b.WriteString(url.QueryEscape(branch))
	b.WriteString("&file=")
	b.WriteString(url.QueryEscape(file))
	b.WriteString("&editor=")
	b.WriteString(url.QueryEscape(editorName))
	b.WriteString("&version=")
	b.WriteString(url.QueryEscape(editorVersion))
	b.WriteString("&start_row=")
	b.WriteString(strconv.Itoa(r.StartLine))
	b.WriteString("&start_col=")
	b.WriteString(strconv.Itoa(r.StartCol))
	b.WriteString("&end_row=")
	b.WriteString(strconv.Itoa(r.EndLine))
	b.WriteString("&end_col=")
	b.WriteString(strconv.Itoa(r.EndCol))
	return normalizeURL(b.String())
}

// BuildSearchURL formats a plain literal-pattern search link.
func BuildSearchURL(baseURL, query string) (string, error) {
	raw := strings.TrimRight(baseURL, "/") + "/search?patternType=literal&q=" + url.QueryEscape(query)
	return normalizeURL(raw)
}

// normalizeURL reparses the assembled URL as a final validity pass. Values
// are already escaped, so this is the identity on well-formed input.
func normalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", &OpError{Op: "link.build", Kind: KindInvalidConfig, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &OpError{Op: "link.build", Kind: KindInvalidConfig, Err: ErrInvalidConfig}
	}
	return u.String(), nil
}
