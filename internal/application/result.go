// Package application contains the service layer: use-case orchestration on
// top of the repositories, the tri-state Result type and request validation.
package application

// Result is the outcome of a service operation without a payload: success,
// failure with a classified error, or validation failure with a list of
// message keys. Expected business conditions never escape a service as
// anything else.
type Result struct {
	Err              error
	ValidationErrors []string
}

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool {
	return r.Err == nil && len(r.ValidationErrors) == 0
}

// OK returns a successful Result.
func OK() Result { return Result{} }

// Fail returns a failed Result carrying a classified error.
func Fail(err error) Result { return Result{Err: err} }

// Invalid returns a validation-failure Result carrying message keys.
func Invalid(keys ...string) Result { return Result{ValidationErrors: keys} }

// DataResult is a Result that carries a payload on success.
type DataResult[T any] struct {
	Result
	Data T
}

// OKData returns a successful DataResult with a payload.
func OKData[T any](data T) DataResult[T] {
	return DataResult[T]{Data: data}
}

// FailData returns a failed DataResult.
func FailData[T any](err error) DataResult[T] {
	return DataResult[T]{Result: Fail(err)}
}

// InvalidData returns a validation-failure DataResult.
func InvalidData[T any](keys ...string) DataResult[T] {
	return DataResult[T]{Result: Invalid(keys...)}
}
