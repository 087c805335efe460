// Package generate models the "generate documentation" action.
//
// Generation is a mock: MockGenerator waits a fixed delay on a cancellable
// timer and then reports success. The Generator interface and the Machine
// state type keep the same start/complete/error shape a real repository
// analyser would need, so one can be swapped in without touching callers.
//
// # Flow
//
//	url, err := generate.ValidateURL(input)
//	if err != nil {
//	    // show validation notification, stay Idle
//	}
//	m, err = m.Start()             // Idle -> Generating
//	err = gen.Generate(ctx, url)   // blocks for the delay
//	m = m.Finish()                 // Generating -> Idle
//
// # Errors
//
// All errors returned by this package are *Error values carrying an
// ErrorType. Use IsValidation and IsCancelled to classify them.
package generate
