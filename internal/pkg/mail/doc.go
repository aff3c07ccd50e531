// Package mail defines the contracts for sending email messages.
//
// Use cases work with the Mail interface and Message payload; SMTP is the
// bundled delivery mechanism. Templates renders named html/template files
// into message bodies.
package mail
