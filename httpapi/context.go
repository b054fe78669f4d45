package httpapi

type contextKey int

//ClientKey is the context key for the *api.Client for a request
const ClientKey contextKey = 0
