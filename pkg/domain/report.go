package domain

// SuspiciousChar describes a single character the detector rewrote.
type SuspiciousChar struct {
	// Position is the rune index within the normalized domain.
	Position int `json:"position"`
	// Original is the character found in the input after compatibility normalization.
	Original string `json:"original"`
	// Canonical is the safe character it was replaced with.
	Canonical string `json:"canonical"`
	// CodePoint is the code point of Original formatted as U+XXXX.
	CodePoint string `json:"codepoint"`
}

// Report is the transient outcome of a single detection. It is never stored.
type Report struct {
	// IsSuspicious is set when the normalized domain differs from the input,
	// ignoring case.
	IsSuspicious bool `json:"is_suspicious"`
	// InputDomain is the domain exactly as received.
	InputDomain string `json:"input_domain"`
	// NormalizedDomain is the fully canonicalized form of the input.
	NormalizedDomain string `json:"normalized_domain"`
	// Similarity is the Ratcliff/Obershelp ratio in [0,1].
	Similarity float64 `json:"-"`
	// SimilarityScore is Similarity as a rounded percentage, e.g. "80%".
	SimilarityScore string `json:"similarity_score"`
	// SuspiciousChars lists every rewritten position, in order.
	SuspiciousChars []SuspiciousChar `json:"suspicious_chars"`

	// ReferenceDomain is set when the caller compared against a known domain.
	ReferenceDomain string `json:"reference_domain,omitempty"`
	// ImpersonatesReference reports whether the input looks like the reference
	// without being it.
	ImpersonatesReference bool `json:"impersonates_reference,omitempty"`
}
