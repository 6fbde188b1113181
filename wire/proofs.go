package wire

import (
	"github.com/takakv/confidential-core/bulletproofs"
	"github.com/takakv/confidential-core/cerr"
	"github.com/takakv/confidential-core/equality"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
	"github.com/takakv/confidential-core/validity"
)

// EncodeRangeProof serializes a bulletproofs.RangeProof.
func EncodeRangeProof(p *bulletproofs.RangeProof) ([]byte, error) {
	w := &writer{}
	w.header(KindRangeProof)
	for _, err := range []error{
		w.element(p.V.Element()),
		w.element(p.A),
		w.element(p.S),
		w.element(p.T1),
		w.element(p.T2),
		w.scalar(p.TauX),
		w.scalar(p.Mu),
		w.scalar(p.THat),
	} {
		if err != nil {
			return nil, err
		}
	}
	if err := encodeIPP(w, p.IPP); err != nil {
		return nil, err
	}
	return checkSize(w.bytes())
}

// DecodeRangeProof parses a bulletproofs.RangeProof.
func DecodeRangeProof(data []byte) (*bulletproofs.RangeProof, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	if err := r.expectKind(KindRangeProof); err != nil {
		return nil, err
	}

	fields, err := readElements(r, 5)
	if err != nil {
		return nil, err
	}
	tauX, mu, tHat, err := readScalars3(r)
	if err != nil {
		return nil, err
	}
	ipp, err := decodeIPP(r)
	if err != nil {
		return nil, err
	}

	return &bulletproofs.RangeProof{
		V:    pedersen.FromElement(fields[0]),
		A:    fields[1],
		S:    fields[2],
		T1:   fields[3],
		T2:   fields[4],
		TauX: tauX, Mu: mu, THat: tHat,
		IPP: ipp,
	}, nil
}

// EncodeAggregatedRangeProof serializes a bulletproofs.AggregatedRangeProof.
func EncodeAggregatedRangeProof(p *bulletproofs.AggregatedRangeProof) ([]byte, error) {
	w := &writer{}
	w.header(KindAggregatedRangeProof)
	w.uint32(uint32(len(p.Vs)))
	for _, v := range p.Vs {
		if err := w.element(v.Element()); err != nil {
			return nil, err
		}
	}
	for _, err := range []error{
		w.element(p.A),
		w.element(p.S),
		w.element(p.T1),
		w.element(p.T2),
		w.scalar(p.TauX),
		w.scalar(p.Mu),
		w.scalar(p.THat),
	} {
		if err != nil {
			return nil, err
		}
	}
	if err := encodeIPP(w, p.IPP); err != nil {
		return nil, err
	}
	return checkSize(w.bytes())
}

// DecodeAggregatedRangeProof parses a bulletproofs.AggregatedRangeProof.
func DecodeAggregatedRangeProof(data []byte) (*bulletproofs.AggregatedRangeProof, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	if err := r.expectKind(KindAggregatedRangeProof); err != nil {
		return nil, err
	}

	m, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if int(m) > (len(r.buf)-r.pos)/32 {
		return nil, cerr.Wrap(cerr.ErrEncodingError, "aggregated range proof: impossible commitment count %d", m)
	}
	vs := make([]pedersen.Commitment, m)
	for i := range vs {
		e, err := r.element()
		if err != nil {
			return nil, err
		}
		vs[i] = pedersen.FromElement(e)
	}

	fields, err := readElements(r, 4)
	if err != nil {
		return nil, err
	}
	tauX, mu, tHat, err := readScalars3(r)
	if err != nil {
		return nil, err
	}
	ipp, err := decodeIPP(r)
	if err != nil {
		return nil, err
	}

	return &bulletproofs.AggregatedRangeProof{
		Vs: vs,
		A:  fields[0], S: fields[1], T1: fields[2], T2: fields[3],
		TauX: tauX, Mu: mu, THat: tHat,
		IPP: ipp,
	}, nil
}

// EncodeEqualityProof serializes an equality.Proof.
func EncodeEqualityProof(p *equality.Proof) ([]byte, error) {
	w := &writer{}
	w.header(KindEqualityProof)
	if err := w.element(p.K); err != nil {
		return nil, err
	}
	if err := w.scalar(p.Z); err != nil {
		return nil, err
	}
	return checkSize(w.bytes())
}

// DecodeEqualityProof parses an equality.Proof.
func DecodeEqualityProof(data []byte) (*equality.Proof, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	if err := r.expectKind(KindEqualityProof); err != nil {
		return nil, err
	}
	k, err := r.element()
	if err != nil {
		return nil, err
	}
	z, err := r.scalar()
	if err != nil {
		return nil, err
	}
	return &equality.Proof{K: k, Z: z}, nil
}

// EncodeValidityProof serializes a validity.Proof.
func EncodeValidityProof(p *validity.Proof) ([]byte, error) {
	w := &writer{}
	w.header(KindValidityProof)
	for _, err := range []error{
		w.element(p.Before.Element()),
		w.element(p.Amount.Element()),
		w.element(p.After.Element()),
		w.element(p.RecipientAmount.Element()),
	} {
		if err != nil {
			return nil, err
		}
	}

	amountRP, err := EncodeRangeProof(p.AmountRangeProof)
	if err != nil {
		return nil, err
	}
	afterRP, err := EncodeRangeProof(p.AfterRangeProof)
	if err != nil {
		return nil, err
	}
	eqP, err := EncodeEqualityProof(p.EqualityProof)
	if err != nil {
		return nil, err
	}

	w.uint32(uint32(len(amountRP)))
	w.buf = append(w.buf, amountRP...)
	w.uint32(uint32(len(afterRP)))
	w.buf = append(w.buf, afterRP...)
	w.uint32(uint32(len(eqP)))
	w.buf = append(w.buf, eqP...)

	return checkSize(w.bytes())
}

// DecodeValidityProof parses a validity.Proof.
func DecodeValidityProof(data []byte) (*validity.Proof, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	if err := r.expectKind(KindValidityProof); err != nil {
		return nil, err
	}

	fields, err := readElements(r, 4)
	if err != nil {
		return nil, err
	}

	amountRPBytes, err := readBlock(r)
	if err != nil {
		return nil, err
	}
	afterRPBytes, err := readBlock(r)
	if err != nil {
		return nil, err
	}
	eqBytes, err := readBlock(r)
	if err != nil {
		return nil, err
	}

	amountRP, err := DecodeRangeProof(amountRPBytes)
	if err != nil {
		return nil, err
	}
	afterRP, err := DecodeRangeProof(afterRPBytes)
	if err != nil {
		return nil, err
	}
	eqProof, err := DecodeEqualityProof(eqBytes)
	if err != nil {
		return nil, err
	}

	return &validity.Proof{
		Before:           pedersen.FromElement(fields[0]),
		Amount:           pedersen.FromElement(fields[1]),
		After:            pedersen.FromElement(fields[2]),
		RecipientAmount:  pedersen.FromElement(fields[3]),
		AmountRangeProof: amountRP,
		AfterRangeProof:  afterRP,
		EqualityProof:    eqProof,
	}, nil
}

// EncodeTransactionProof serializes a validity.TransactionProof.
func EncodeTransactionProof(p *validity.TransactionProof) ([]byte, error) {
	w := &writer{}
	w.header(KindTransactionProof)

	w.uint32(uint32(len(p.Inputs)))
	for _, c := range p.Inputs {
		if err := w.element(c.Element()); err != nil {
			return nil, err
		}
	}
	w.uint32(uint32(len(p.Outputs)))
	for _, c := range p.Outputs {
		if err := w.element(c.Element()); err != nil {
			return nil, err
		}
	}

	outRP, err := EncodeAggregatedRangeProof(p.OutputsRangeProof)
	if err != nil {
		return nil, err
	}
	zp, err := EncodeEqualityProof(p.ZeroProof)
	if err != nil {
		return nil, err
	}
	w.uint32(uint32(len(outRP)))
	w.buf = append(w.buf, outRP...)
	w.uint32(uint32(len(zp)))
	w.buf = append(w.buf, zp...)

	return checkSize(w.bytes())
}

// DecodeTransactionProof parses a validity.TransactionProof.
func DecodeTransactionProof(data []byte) (*validity.TransactionProof, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	if err := r.expectKind(KindTransactionProof); err != nil {
		return nil, err
	}

	inEls, err := r.elementVector()
	if err != nil {
		return nil, err
	}
	outEls, err := r.elementVector()
	if err != nil {
		return nil, err
	}

	outRPBytes, err := readBlock(r)
	if err != nil {
		return nil, err
	}
	zpBytes, err := readBlock(r)
	if err != nil {
		return nil, err
	}

	outRP, err := DecodeAggregatedRangeProof(outRPBytes)
	if err != nil {
		return nil, err
	}
	zp, err := DecodeEqualityProof(zpBytes)
	if err != nil {
		return nil, err
	}

	return &validity.TransactionProof{
		Inputs:            commitmentsFromElements(inEls),
		Outputs:           commitmentsFromElements(outEls),
		OutputsRangeProof: outRP,
		ZeroProof:         zp,
	}, nil
}

func commitmentsFromElements(els []group.Element) []pedersen.Commitment {
	out := make([]pedersen.Commitment, len(els))
	for i, e := range els {
		out[i] = pedersen.FromElement(e)
	}
	return out
}

func encodeIPP(w *writer, p *bulletproofs.InnerProductProof) error {
	if err := w.elementVector(p.L); err != nil {
		return err
	}
	if err := w.elementVector(p.R); err != nil {
		return err
	}
	if err := w.scalar(p.A); err != nil {
		return err
	}
	return w.scalar(p.B)
}

func decodeIPP(r *reader) (*bulletproofs.InnerProductProof, error) {
	l, err := r.elementVector()
	if err != nil {
		return nil, err
	}
	rv, err := r.elementVector()
	if err != nil {
		return nil, err
	}
	a, err := r.scalar()
	if err != nil {
		return nil, err
	}
	b, err := r.scalar()
	if err != nil {
		return nil, err
	}
	return &bulletproofs.InnerProductProof{L: l, R: rv, A: a, B: b}, nil
}

func readElements(r *reader, n int) ([]group.Element, error) {
	out := make([]group.Element, n)
	for i := range out {
		e, err := r.element()
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func readScalars3(r *reader) (a, b, c group.Scalar, err error) {
	if a, err = r.scalar(); err != nil {
		return
	}
	if b, err = r.scalar(); err != nil {
		return
	}
	c, err = r.scalar()
	return
}

func readBlock(r *reader) ([]byte, error) {
	n, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if err := r.need(int(n)); err != nil {
		return nil, err
	}
	block := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return block, nil
}

func checkSize(data []byte) ([]byte, error) {
	if len(data) > MaxProofSize {
		return nil, cerr.Wrap(cerr.ErrOversizedProof, "encoded proof is %d bytes, max is %d", len(data), MaxProofSize)
	}
	return data, nil
}
