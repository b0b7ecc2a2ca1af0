package fetcher

// Page is a successfully fetched document.
type Page struct {
	// URL is the address that was requested
	URL string

	// StatusCode is the HTTP status of the final response (always 2xx)
	StatusCode int

	// ContentType is the raw Content-Type header, possibly empty
	ContentType string

	// Body is the decoded response body
	Body string
}
