package models

// Filter narrows a point listing. It is transient state, held only for the
// duration of a listing session; any change triggers exactly one re-fetch.
type Filter struct {
	// Search is matched client-side against organization name, address and
	// description (the backend has no text search yet).
	Search string

	// VerifiedOnly keeps only points whose creator is verified. Nil means
	// "don't care".
	VerifiedOnly *bool
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.VerifiedOnly == nil
}
