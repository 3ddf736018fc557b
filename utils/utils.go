// Package utils implements various helper functions.
package utils
