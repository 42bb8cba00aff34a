package linalg

import "gonum.org/v1/gonum/mat"

// epsilon is the pseudo-inverse singular-value tolerance, matching the
// machine epsilon of an IEEE-754 double.
const epsilon = 2.220446049250313e-16

// Accumulator is the (n+1)x(n+1) symmetric quadric matrix Q accumulated
// from a cell's corner planes, built by repeated outer-product addition
// of augmented (n+1)-vectors.
// Row-major flat storage, matrix.Dense's layout generalized to a fixed
// small size.
type Accumulator struct {
	n    int
	data []float64
}

// NewAccumulator returns a zeroed accumulator for a subspace of dimension
// n (n in {1,2,3}).
func NewAccumulator(n int) *Accumulator {
	d := n + 1

	return &Accumulator{n: n, data: make([]float64, d*d)}
}

func (a *Accumulator) dim() int {
	return a.n + 1
}

// Add folds the outer product of the augmented vector v (length n+1)
// into the accumulator.
func (a *Accumulator) Add(v []float64) {
	d := a.dim()
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			a.data[i*d+j] += v[i] * v[j]
		}
	}
}

// Solve returns p* = A+ . (-b), where A = Q[0:n,0:n] and b = Q[0:n,n],
// using the Moore-Penrose pseudo-inverse of A. ok is false only when the
// SVD of A fails; a rank-deficient A (including an all-zero accumulator,
// which yields p = 0) still solves with its degenerate directions zeroed.
func (a *Accumulator) Solve() (p []float64, ok bool) {
	n := a.n
	d := a.dim()
	A := mat.NewDense(n, n, nil)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, a.data[i*d+j])
		}
		b[i] = -a.data[i*d+n]
	}

	pinv, ok := PseudoInverse(A)
	if !ok {
		return nil, false
	}

	var result mat.VecDense
	result.MulVec(pinv, mat.NewVecDense(n, b))

	out := make([]float64, n)
	for i := range out {
		out[i] = result.AtVec(i)
	}

	return out, true
}

// PseudoInverse computes the Moore-Penrose pseudo-inverse of a via SVD,
// zeroing singular values at or below epsilon rather than inverting them.
// ok is false if the decomposition fails to converge.
func PseudoInverse(a *mat.Dense) (*mat.Dense, bool) {
	rows, cols := a.Dims()

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return nil, false
	}

	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	sigmaPlus := mat.NewDense(cols, rows, nil)
	for i, sv := range values {
		if sv > epsilon {
			sigmaPlus.Set(i, i, 1/sv)
		}
	}

	var vSigma, pinv mat.Dense
	vSigma.Mul(&v, sigmaPlus)
	pinv.Mul(&vSigma, u.T())

	return &pinv, true
}
