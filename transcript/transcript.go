// Package transcript implements a Merlin-style Fiat-Shamir transcript:
// a domain-separated, append-only absorption into a SHAKE256 sponge,
// from which deterministic challenge scalars are squeezed. Every value
// that influences a proof's soundness — commitments, public inputs,
// round messages — must be absorbed before the challenge that depends
// on it is drawn.
package transcript

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/takakv/confidential-core/group"
)

// Transcript is a running SHAKE256 sponge into which the domain label
// was absorbed at creation.
type Transcript struct {
	state sha3.ShakeHash
}

// New starts a fresh transcript bound to label, e.g. "range-proof" or
// "transfer-validity". Two transcripts started with different labels
// never produce the same challenge for the same absorbed messages.
func New(label string) *Transcript {
	t := &Transcript{state: sha3.NewShake256()}
	t.appendMessage("confidential-core/transcript/v1", []byte(label))
	return t
}

func (t *Transcript) appendMessage(label string, data []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(label)))
	t.state.Write(lenBuf[:])
	t.state.Write([]byte(label))
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(data)))
	t.state.Write(lenBuf[:])
	t.state.Write(data)
}

// AppendMessage absorbs an arbitrary labelled byte string.
func (t *Transcript) AppendMessage(label string, data []byte) {
	t.appendMessage(label, data)
}

// AppendUint64 absorbs a labelled 64-bit integer, e.g. a range-proof
// bit width or an output index.
func (t *Transcript) AppendUint64(label string, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	t.appendMessage(label, buf[:])
}

// AppendPoint absorbs a labelled group element's canonical encoding.
func (t *Transcript) AppendPoint(label string, p group.Element) error {
	data, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	t.appendMessage(label, data)
	return nil
}

// AppendScalar absorbs a labelled scalar's canonical encoding.
func (t *Transcript) AppendScalar(label string, s group.Scalar) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	t.appendMessage(label, data)
	return nil
}

// ChallengeScalar squeezes a single challenge scalar under label.
func (t *Transcript) ChallengeScalar(label string) group.Scalar {
	return t.ChallengeScalars(label, 1)[0]
}

// ChallengeScalars squeezes n independent challenge scalars under a
// shared label, each from a distinct 64-byte window of sponge output
// reduced modulo the group order. Squeezing reads from a clone of the
// sponge state, so the live transcript keeps accepting further
// AppendMessage/AppendPoint/AppendScalar calls afterwards — subsequent
// absorbed values (the proof data computed using this challenge) are
// what binds later challenges to this one, exactly as a multi-round
// sigma protocol requires.
func (t *Transcript) ChallengeScalars(label string, n int) []group.Scalar {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(label)))
	t.state.Write(lenBuf[:])
	t.state.Write([]byte(label))

	reader := t.state.Clone()
	out := make([]group.Scalar, n)
	for i := range out {
		var wide [64]byte
		if _, err := reader.Read(wide[:]); err != nil {
			panic("transcript: sponge squeeze failed: " + err.Error())
		}
		out[i] = group.ScalarFromBigInt(new(big.Int).SetBytes(wide[:]))
	}
	return out
}

// Clone returns an independent copy of the transcript whose further
// absorption does not affect the original, e.g. to fork a sub-transcript
// that keeps a shared prefix.
func (t *Transcript) Clone() *Transcript {
	return &Transcript{state: t.state.Clone()}
}
