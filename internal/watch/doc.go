// Package watch monitors the user preset directory so preset lists
// stay current while the application runs.
package watch
