package result

// Val holds exactly one of a value or an error code: a successful Val
// carries the value and the Success sentinel, a failed Val carries only
// the code that caused the failure.
type Val[T any] struct {
	value T
	code  Code
}

// Ok wraps a successful value.
func Ok[T any](value T) Val[T] {
	return Val[T]{value: value}
}

// Err wraps a failure code. The code must denote an error.
func Err[T any](code Code) Val[T] {
	if code.IsSuccess() {
		panic("result: Err called with the success sentinel")
	}
	return Val[T]{code: code}
}

// Code returns the result code, Success for a successful Val.
func (v Val[T]) Code() Code {
	return v.code
}

// IsError reports whether the Val carries a failure code.
func (v Val[T]) IsError() bool {
	return v.code.IsError()
}

// IsSuccess reports whether the Val carries a value.
func (v Val[T]) IsSuccess() bool {
	return v.code.IsSuccess()
}

// Unwrap returns the carried value. Unwrapping a failed Val is a
// programmer error and panics.
func (v Val[T]) Unwrap() T {
	if v.IsError() {
		panic("result: Unwrap called on a failed Val: " + v.code.Error())
	}
	return v.value
}
