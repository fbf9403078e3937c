// Package util provides small generic helpers shared across apistate packages.
package util
