// Package linalg provides the small amount of numerical linear algebra the
// dual solver needs: accumulating a symmetric quadric matrix from repeated
// outer products, then solving it by Moore-Penrose pseudo-inverse.
//
// It stores the Accumulator in a row-major flat slice but delegates the
// actual singular value decomposition to gonum.org/v1/gonum/mat.SVD rather
// than hand-rolling Jacobi or QR iteration: a general dense-matrix solver
// is overkill here, since every Accumulator is at most 4x4 and solves at
// most a 3x3 system.
package linalg
