// Package youtube extracts video identifiers from the URL forms YouTube
// serves and formats timestamped watch links for resolved matches.
package youtube
