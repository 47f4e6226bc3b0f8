package object

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// A Quaternion is the number A + Bi + Cj + Dk.
type Quaternion struct {
	A, B, C, D float64
}

func Real(n float64) *Quaternion {
	return &Quaternion{A: n}
}

func (q *Quaternion) Type() ExpressionType { return QUATERNION_EXP }

func (q *Quaternion) Inspect(view View) string {
	if math.IsNaN(q.A) || math.IsNaN(q.B) || math.IsNaN(q.C) || math.IsNaN(q.D) {
		return "NaN"
	}
	var out strings.Builder
	for i, part := range []float64{q.A, q.B, q.C, q.D} {
		if part == 0 {
			continue
		}
		s := FormatNumber(part)
		if out.Len() > 0 && !strings.HasPrefix(s, "-") {
			s = "+" + s
		}
		out.WriteString(s)
		out.WriteString([...]string{"", "i", "j", "k"}[i])
	}
	if out.Len() == 0 {
		out.WriteString("0")
	}
	if view == ViewDebug {
		return "<Quat:" + out.String() + ">"
	}
	return out.String()
}

func (q *Quaternion) Add(r *Quaternion) *Quaternion {
	return &Quaternion{q.A + r.A, q.B + r.B, q.C + r.C, q.D + r.D}
}

func (q *Quaternion) Sub(r *Quaternion) *Quaternion {
	return &Quaternion{q.A - r.A, q.B - r.B, q.C - r.C, q.D - r.D}
}

// Hamilton product; not commutative.
func (q *Quaternion) Mul(r *Quaternion) *Quaternion {
	return &Quaternion{
		A: q.A*r.A - q.B*r.B - q.C*r.C - q.D*r.D,
		B: q.A*r.B + q.B*r.A + q.C*r.D - q.D*r.C,
		C: q.A*r.C - q.B*r.D + q.C*r.A + q.D*r.B,
		D: q.A*r.D + q.B*r.C - q.C*r.B + q.D*r.A,
	}
}

// Right division, q * r⁻¹.
func (q *Quaternion) Div(r *Quaternion) *Quaternion {
	return q.Mul(r.Inverse())
}

func (q *Quaternion) Scale(s float64) *Quaternion {
	return &Quaternion{s * q.A, s * q.B, s * q.C, s * q.D}
}

func (q *Quaternion) Neg() *Quaternion {
	return q.Scale(-1)
}

func (q *Quaternion) Conjugate() *Quaternion {
	return &Quaternion{q.A, -q.B, -q.C, -q.D}
}

func (q *Quaternion) Norm() float64 {
	return math.Sqrt(q.A*q.A + q.B*q.B + q.C*q.C + q.D*q.D)
}

func (q *Quaternion) Inverse() *Quaternion {
	n := q.Norm()
	return q.Conjugate().Scale(1 / (n * n))
}

func (q *Quaternion) vectorNorm() float64 {
	return math.Sqrt(q.B*q.B + q.C*q.C + q.D*q.D)
}

// Exp is e raised to the quaternion.
func (q *Quaternion) Exp() *Quaternion {
	ea := math.Exp(q.A)
	v := q.vectorNorm()
	if v == 0 {
		return Real(ea)
	}
	s := ea * math.Sin(v) / v
	return &Quaternion{ea * math.Cos(v), s * q.B, s * q.C, s * q.D}
}

// Ln is the principal natural logarithm. The log of a negative real is taken to lie on the i axis.
func (q *Quaternion) Ln() *Quaternion {
	n := q.Norm()
	v := q.vectorNorm()
	if v == 0 {
		if q.A < 0 {
			return &Quaternion{A: math.Log(-q.A), B: math.Pi}
		}
		return Real(math.Log(q.A))
	}
	s := math.Acos(q.A/n) / v
	return &Quaternion{math.Log(n), s * q.B, s * q.C, s * q.D}
}

// Pow is exp(exponent * ln q).
func (q *Quaternion) Pow(exponent *Quaternion) *Quaternion {
	return exponent.Mul(q.Ln()).Exp()
}

const numberPattern = `(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`

var (
	quaternionLiteral = regexp.MustCompile(`^[+-]?` + numberPattern + `[ijk]?(?:[+-]` + numberPattern + `[ijk]?)*$`)
	quaternionTerm    = regexp.MustCompile(`[+-]?` + numberPattern + `[ijk]?`)
)

// ParseQuaternion reads literals such as "2j", "1+2i" or "1.5-2i+3j-4k". At least one term must
// carry an imaginary unit, so plain numbers are rejected.
func ParseQuaternion(s string) (*Quaternion, bool) {
	if !quaternionLiteral.MatchString(s) || !strings.ContainsAny(s, "ijk") {
		return nil, false
	}
	result := &Quaternion{}
	for _, term := range quaternionTerm.FindAllString(s, -1) {
		unit := term[len(term)-1]
		if unit == 'i' || unit == 'j' || unit == 'k' {
			term = term[:len(term)-1]
		} else {
			unit = 0
		}
		f, err := strconv.ParseFloat(term, 64)
		if err != nil {
			return nil, false
		}
		switch unit {
		case 'i':
			result.B += f
		case 'j':
			result.C += f
		case 'k':
			result.D += f
		default:
			result.A += f
		}
	}
	return result, true
}
