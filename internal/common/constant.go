package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value inside the authorization header.
const BearerPrefix = "Bearer "
