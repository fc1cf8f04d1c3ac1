// Package weburl validates remote URLs before they are fetched.
//
// ValidateURL rejects anything that could reach a private network:
//
//   - schemes other than HTTPS
//   - localhost variants and .local/.internal domains
//   - literal private, loopback, link-local and CGNAT addresses
//
// IsPrivateIP is also used at dial time, after DNS resolution, so a public
// name resolving to a private address is refused as well.
//
// Resolve joins a page name onto a base URL and validates the result:
//
//	Resolve("https://raw.githubusercontent.com/simondschweitzer/aed/gh-pages/", "89500.html")
//	// https://raw.githubusercontent.com/simondschweitzer/aed/gh-pages/89500.html
package weburl
