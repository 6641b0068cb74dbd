package fits

// Warning describes a non-fatal, lossy adjustment made while encoding, such
// as a comment truncated to fit its record.
type Warning struct {
	Keyword string
	Message string
}

// WarningHandler receives encoding warnings.
type WarningHandler func(Warning)

// CardOption configures card encoding.
type CardOption func(*cardOptions)

type cardOptions struct {
	handler WarningHandler
}

func newCardOptions(opts []CardOption) *cardOptions {
	o := &cardOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *cardOptions) warn(w Warning) {
	if o.handler != nil {
		o.handler(w)
	}
}

// WithWarningHandler installs a handler for lossy-encoding warnings. Without
// one, warnings are discarded.
func WithWarningHandler(h WarningHandler) CardOption {
	return func(o *cardOptions) {
		o.handler = h
	}
}

// SetOption configures header mutation.
type SetOption func(*setOptions)

type setOptions struct {
	occurrence int
	card       []CardOption
}

func newSetOptions(opts []SetOption) *setOptions {
	o := &setOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Occurrence addresses the n-th card with the target keyword (0-based).
// An occurrence past the last match appends a new card.
func Occurrence(n int) SetOption {
	return func(o *setOptions) {
		if n >= 0 {
			o.occurrence = n
		}
	}
}

// WithCardOptions forwards card encoding options to the freshly encoded card.
func WithCardOptions(opts ...CardOption) SetOption {
	return func(o *setOptions) {
		o.card = append(o.card, opts...)
	}
}

// DecodeOption configures buffer decoding.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	expectedAxes int
	checkAxes    bool
}

func newDecodeOptions(opts []DecodeOption) *decodeOptions {
	o := &decodeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithExpectedAxes makes Decode fail with ErrMismatchedNaxis when the file's
// NAXIS differs from n.
func WithExpectedAxes(n int) DecodeOption {
	return func(o *decodeOptions) {
		o.expectedAxes = n
		o.checkAxes = true
	}
}

// FileOption configures file construction from raw values.
type FileOption func(*fileOptions)

type fileOptions struct {
	base *Header
}

func newFileOptions(opts []FileOption) *fileOptions {
	o := &fileOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithBaseHeader carries the non-structural cards of h into the new file's
// header; the structural cards are rebuilt from the requested shape.
func WithBaseHeader(h *Header) FileOption {
	return func(o *fileOptions) {
		o.base = h
	}
}
