// Package wire implements the canonical binary encoding every proof
// type in this module is serialized to: a 4-byte format tag, a 1-byte
// proof-kind tag, and a sequence of fixed-size point/scalar encodings
// and length-prefixed vectors. Decoding enforces a hard maximum proof
// size so a malicious or corrupt blob cannot force unbounded allocation.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/takakv/confidential-core/cerr"
	"github.com/takakv/confidential-core/group"
)

// MaxProofSize is the largest encoded proof this module will decode.
// Every real proof produced by this module (range, aggregated range,
// equality, validity, transaction) fits well within it; anything larger
// on the wire is rejected before any decoding work begins.
const MaxProofSize = 10 * 1024

const formatTag = "CCP1"

// ProofKind identifies which proof type a serialized blob holds, so a
// generic byte stream can be dispatched to the right decoder.
type ProofKind byte

const (
	KindRangeProof ProofKind = iota + 1
	KindAggregatedRangeProof
	KindEqualityProof
	KindValidityProof
	KindTransactionProof
)

type writer struct {
	buf []byte
}

func (w *writer) bytes() []byte { return w.buf }

func (w *writer) header(kind ProofKind) {
	w.buf = append(w.buf, []byte(formatTag)...)
	w.buf = append(w.buf, byte(kind))
}

func (w *writer) element(e group.Element) error {
	data, err := e.MarshalBinary()
	if err != nil {
		return cerr.Wrap(cerr.ErrEncodingError, "encode element: %v", err)
	}
	w.buf = append(w.buf, data...)
	return nil
}

func (w *writer) scalar(s group.Scalar) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return cerr.Wrap(cerr.ErrEncodingError, "encode scalar: %v", err)
	}
	w.buf = append(w.buf, data...)
	return nil
}

func (w *writer) uint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) elementVector(es []group.Element) error {
	w.uint32(uint32(len(es)))
	for _, e := range es {
		if err := w.element(e); err != nil {
			return err
		}
	}
	return nil
}

type reader struct {
	buf []byte
	pos int
}

func newReader(data []byte) (*reader, error) {
	if len(data) > MaxProofSize {
		return nil, cerr.Wrap(cerr.ErrOversizedProof, "proof is %d bytes, max is %d", len(data), MaxProofSize)
	}
	if len(data) < len(formatTag)+1 {
		return nil, cerr.Wrap(cerr.ErrEncodingError, "proof too short for header")
	}
	if string(data[:len(formatTag)]) != formatTag {
		return nil, cerr.Wrap(cerr.ErrEncodingError, "unrecognized format tag")
	}
	return &reader{buf: data, pos: len(formatTag)}, nil
}

func (r *reader) kind() ProofKind {
	k := ProofKind(r.buf[r.pos])
	r.pos++
	return k
}

func (r *reader) need(n int) error {
	if r.pos+n > len(r.buf) {
		return cerr.Wrap(cerr.ErrEncodingError, "unexpected end of proof data")
	}
	return nil
}

func (r *reader) element() (group.Element, error) {
	if err := r.need(32); err != nil {
		return nil, err
	}
	e := group.Ristretto255.Element()
	if err := e.UnmarshalBinary(r.buf[r.pos : r.pos+32]); err != nil {
		return nil, cerr.Wrap(cerr.ErrNotInPrimeSubgroup, "decode element: %v", err)
	}
	r.pos += 32
	return e, nil
}

func (r *reader) scalar() (group.Scalar, error) {
	if err := r.need(32); err != nil {
		return nil, err
	}
	s := group.Ristretto255.NewScalar()
	if err := s.UnmarshalBinary(r.buf[r.pos : r.pos+32]); err != nil {
		return nil, cerr.Wrap(cerr.ErrEncodingError, "decode scalar: %v", err)
	}
	r.pos += 32
	return s, nil
}

func (r *reader) uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *reader) elementVector() ([]group.Element, error) {
	n, err := r.uint32()
	if err != nil {
		return nil, err
	}
	// A single corrupt length prefix must not force a huge allocation;
	// bound it against what could possibly still be in the buffer.
	if int(n) > (len(r.buf)-r.pos)/32 {
		return nil, cerr.Wrap(cerr.ErrEncodingError, "element vector length %d impossible for remaining data", n)
	}
	out := make([]group.Element, n)
	for i := range out {
		e, err := r.element()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}

func (r *reader) expectKind(want ProofKind) error {
	got := r.kind()
	if got != want {
		return cerr.Wrap(cerr.ErrEncodingError, "proof kind %d does not match expected kind %d", got, want)
	}
	return nil
}
