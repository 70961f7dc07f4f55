// Package tabs holds the non-domain tabs of the app shell.
package tabs
