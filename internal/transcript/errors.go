package transcript

import "errors"

// ErrMalformedTranscript indicates the transcript text, items, and speaker
// segments do not describe the same token sequence.
var ErrMalformedTranscript = errors.New("malformed transcript")
