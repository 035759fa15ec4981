// Package moebius implements 2×2 Möbius transformations over a generic
// real scalar.
//
// A Transformation{A, B, C, D} stands for the matrix [A, B; C, D] and acts
// as z ↦ (A·z + B)/(C·z + D). Any 2×2 matrix is representable; no invariant
// is imposed here (see package sl2 for the determinant-one wrapper).
//
// Algebraic structure:
//
//   - vector space: Zero, Add, Neg, Sub, Scale (entrywise)
//   - composition:  Mul is the matrix product, Identity is [1, 0; 0, 1]
//   - Determinant, SquaredSum (Frobenius norm squared), IsInvertible, Inverse
//
// Transformations are small immutable values; every method has a value
// receiver and returns a fresh value.
//
// Complexity: every operation is O(1).
package moebius
