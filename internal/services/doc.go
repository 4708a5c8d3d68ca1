// Package services holds boundary adapters for external collaborators and
// the shared error classification they report through. The matching core
// never imports this package; only acquisition and storage layers do.
package services
