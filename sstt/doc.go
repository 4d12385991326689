// Package sstt decodes SSTT v2 ("small simple time-tagged") event record streams.
//
// # Record Format
//
// A channel file holds a sequence of 6-byte little-endian records. Each record
// is one 48-bit word:
//
//	bit  0     signal bit A
//	bit  1     signal bit B
//	bits 2-47  payload (46 bits, unsigned)
//
// The signal selects the meaning of the payload:
//
//	00  photon:   payload is the macrotime truncated to 46 bits
//	01  overflow: payload is the number of counter overflows since the previous record
//	    other patterns carry no time information and are reported as KindUnknown
//
// The true macrotime of a photon is payload + overflows·2^46, where overflows is
// the running sum of all overflow payloads seen so far. That running sum is the
// only state needed to decode a stream and it is threaded explicitly through
// DecodeRecord, Stream and State, so a decode can resume anywhere.
//
// A file may start with an 18-byte header beginning with Magic. SplitHeader
// removes it; the decoder itself expects a bare record stream.
//
// # Basic Usage
//
//	dec, _ := sstt.NewDecoder()
//	macrotimes, state, err := dec.Decode(records)
//
// Resuming after the file has grown:
//
//	dec, _ = sstt.NewDecoder(sstt.WithCheckpoint(state))
//	more, state, err = dec.Decode(grownRecords)
//
// # Thread Safety
//
// Decoder and Encoder configuration is immutable after construction and a
// Decoder may be shared. A Stream and an Encoder carry sequential state and
// must not be used from several goroutines at once. Overflow accounting is
// order dependent, so segments of one file must be decoded in order.
package sstt
