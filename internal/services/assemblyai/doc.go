// Package assemblyai is the HTTP boundary adapter for the AssemblyAI
// transcription provider: it uploads local audio, submits a transcription
// job, and polls until timed words are available. Speech-to-text itself
// happens on the provider's side; this package only moves bytes and decodes
// the result into transcript words.
package assemblyai
