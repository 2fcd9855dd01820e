// Package errs defines the sentinel errors returned throughout ragfile.
//
// Every failure mode in the format's error taxonomy (InvalidArgument,
// InvalidFormat, UnsupportedVersion, Io, Incompatible) is represented by
// one or more package-level sentinels here. Call sites wrap a sentinel
// with context using fmt.Errorf("%w: ...", errs.ErrX, ...); callers
// classify failures with errors.Is against these values rather than
// string-matching error messages.
package errs

import "errors"

// InvalidArgument: inputs that violate a documented precondition.
var (
	ErrEmptyText             = errors.New("ragfile: text must not be empty")
	ErrTooFewTokens          = errors.New("ragfile: token count is smaller than the largest shingle size")
	ErrEmptyTokens           = errors.New("ragfile: token sequence must not be empty")
	ErrEmptyEmbeddings       = errors.New("ragfile: embedding matrix must not be empty")
	ErrEmbeddingSizeMismatch = errors.New("ragfile: embedding_size does not equal num_embeddings * embedding_dim")
	ErrEmbeddingDimTooSmall  = errors.New("ragfile: embedding_dim is smaller than the binary embedding width")
	ErrInvalidBinaryDim      = errors.New("ragfile: binary embedding dimension must be a multiple of 8")
	ErrEmptyTokenizerID      = errors.New("ragfile: tokenizer id must not be empty")
	ErrEmptyEmbeddingID      = errors.New("ragfile: embedding id must not be empty")
	ErrUnknownCosineMode     = errors.New("ragfile: unknown cosine aggregation mode")
	ErrCosineDimMismatch     = errors.New("ragfile: cosine vectors have mismatched dimensionality")
	ErrInvalidTopK           = errors.New("ragfile: top_k must be positive")
)

// InvalidFormat: on-disk structural inconsistency.
var (
	ErrInvalidMagic        = errors.New("ragfile: magic number mismatch")
	ErrInvalidHeaderSize   = errors.New("ragfile: header is not the expected fixed size")
	ErrMissingIDTerminator = errors.New("ragfile: fixed id string region has no zero terminator")
)

// UnsupportedVersion: magic matched, but the version is unknown.
var ErrUnsupportedVersion = errors.New("ragfile: unsupported format version")

// Io: short read/write, open failure, underlying stream error.
var (
	ErrShortRead  = errors.New("ragfile: short read")
	ErrShortWrite = errors.New("ragfile: short write")
)

// Incompatible: similarity precondition failure. The scan engine converts
// this into a skip rather than propagating it.
var (
	ErrWidthMismatch = errors.New("ragfile: signature widths are incompatible")
)
