// Package language turns the BCP-47 code reported by the transcription job
// into display names. The code is otherwise passed through untouched.
package language
