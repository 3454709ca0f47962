// Package validate holds small pure validators for user-entered fields
// shared by domain setters and command constructors.
package validate
