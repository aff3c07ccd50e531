// Package clock provides a tiny time abstraction.
//
// Event timestamps are read through Clocker so tests can pin them with Fixed.
package clock
