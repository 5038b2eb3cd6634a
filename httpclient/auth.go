package httpclient

import "net/http"

// Auth attaches credentials to an outgoing upload request. A client-level
// Auth applies to every request; Request.Auth overrides it for one call.
// Decoration runs after header merging, so credentials win over defaults.
type Auth interface {
	decorate(*http.Request)
}

// AuthFunc adapts a plain request-modifier function to Auth.
type AuthFunc func(*http.Request)

func (f AuthFunc) decorate(req *http.Request) { f(req) }

// CustomAuth wraps fn as an Auth for schemes not covered here (request
// signing, HMAC headers, etc).
func CustomAuth(fn func(*http.Request)) Auth {
	return AuthFunc(fn)
}

type bearerAuth struct {
	token string
}

func (a bearerAuth) decorate(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.token)
}

// BearerAuth authenticates with a bearer token.
func BearerAuth(token string) Auth {
	return bearerAuth{token: token}
}

type basicAuth struct {
	username string
	password string
}

func (a basicAuth) decorate(req *http.Request) {
	req.SetBasicAuth(a.username, a.password)
}

// BasicAuth authenticates with HTTP Basic credentials.
func BasicAuth(username, password string) Auth {
	return basicAuth{username: username, password: password}
}

type apiKeyAuth struct {
	key     string
	name    string
	inQuery bool
}

func (a apiKeyAuth) decorate(req *http.Request) {
	if a.inQuery {
		q := req.URL.Query()
		q.Set(a.name, a.key)
		req.URL.RawQuery = q.Encode()
		return
	}
	req.Header.Set(a.name, a.key)
}

// APIKeyAuth sends an API key in the X-API-Key header.
func APIKeyAuth(key string) Auth {
	return apiKeyAuth{key: key, name: "X-API-Key"}
}

// APIKeyAuthHeader sends an API key in a custom header.
func APIKeyAuthHeader(key, headerName string) Auth {
	return apiKeyAuth{key: key, name: headerName}
}

// APIKeyAuthQuery sends an API key as a query parameter.
func APIKeyAuthQuery(key, paramName string) Auth {
	return apiKeyAuth{key: key, name: paramName, inQuery: true}
}
