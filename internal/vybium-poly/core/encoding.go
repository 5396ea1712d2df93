package core

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
)

type polynomialMarshal struct {
	Degree       int
	Coefficients [][2]float64
}

// MarshalBinary encodes the polynomial as CBOR
func (p *Polynomial) MarshalBinary() ([]byte, error) {
	pm := &polynomialMarshal{
		Degree:       p.Degree(),
		Coefficients: make([][2]float64, p.size),
	}
	for i := 0; i < p.size; i++ {
		pm.Coefficients[i] = [2]float64{p.coefficients[i].Real, p.coefficients[i].Imag}
	}
	return cbor.Marshal(pm)
}

// UnmarshalBinary decodes a polynomial produced by MarshalBinary, replacing p.
// On error p is left untouched.
func (p *Polynomial) UnmarshalBinary(data []byte) error {
	var pm polynomialMarshal
	if err := cbor.Unmarshal(data, &pm); err != nil {
		return newError(ErrInvalidInput, err, "polynomial: malformed encoding")
	}
	if pm.Degree < -1 {
		return newError(ErrInvalidInput, nil, "polynomial: invalid degree %d", pm.Degree)
	}
	if len(pm.Coefficients) != pm.Degree+1 {
		return newError(ErrInvalidInput, nil,
			"polynomial: degree %d with %d coefficients", pm.Degree, len(pm.Coefficients))
	}

	var decoded Polynomial
	if len(pm.Coefficients) > 0 {
		decoded.coefficients = make([]field.Complex, len(pm.Coefficients))
	}
	for i, c := range pm.Coefficients {
		v := field.New(c[0], c[1])
		if !v.IsFinite() {
			return newError(ErrInvalidInput, nil, "polynomial: coefficient %d is not finite", i)
		}
		decoded.coefficients[i] = v
	}
	decoded.size = len(decoded.coefficients)

	*p = *decoded.finish()
	return nil
}

// WriteTo implements io.WriterTo. It writes the degree followed by the IEEE 754
// bits of every coefficient, with negative zeros written as zeros so that equal
// polynomials produce equal output.
func (p *Polynomial) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.BigEndian, int64(p.Degree())); err != nil {
		return 0, err
	}
	nAll := int64(8)

	buf := make([]byte, 16)
	for i := 0; i < p.size; i++ {
		c := p.coefficients[i]
		binary.BigEndian.PutUint64(buf[:8], canonicalBits(c.Real))
		binary.BigEndian.PutUint64(buf[8:], canonicalBits(c.Imag))
		n, err := w.Write(buf)
		nAll += int64(n)
		if err != nil {
			return nAll, err
		}
	}
	return nAll, nil
}

func canonicalBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

// Fingerprint returns the SHA3-256 digest of the canonical encoding written by
// WriteTo. Equal polynomials have equal fingerprints.
func (p *Polynomial) Fingerprint() [32]byte {
	h := sha3.New256()
	// writes to a hash never fail
	_, _ = p.WriteTo(h)

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}
