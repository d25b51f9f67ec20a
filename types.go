package lineskema

// ProduceOpt bundles producing options. The zero value means a space
// delimiter and no line-length cap.
type ProduceOpt struct {
	// Delimiter separates tokens within a line; ' ' when zero. Supplied per
	// call, never fixed globally.
	Delimiter byte
	// MaxLineBytes rejects lines longer than this many bytes with
	// CodeTruncated. 0 disables the cap.
	MaxLineBytes int64
}
