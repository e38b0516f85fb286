package links

// HasTrailingSlashAfterAnchor reports links such as "../cat/slug#heading/", where the
// final '/' follows an anchor instead of a path segment.
func HasTrailingSlashAfterAnchor(link string) bool {
	if len(link) == 0 || link[len(link)-1] != '/' {
		return false
	}
	for i := len(link) - 2; i >= 0; i-- {
		switch link[i] {
		case '#':
			return true
		case '/':
			return false
		}
	}
	return false
}
