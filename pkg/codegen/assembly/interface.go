package assembly

// Assembly interface defines methods for generating assembly code. Writing
// the generated text to storage is the caller's responsibility.
type Assembly interface {
	Generate() error
	GetCode() string
}
