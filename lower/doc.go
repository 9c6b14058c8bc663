// Package lower turns a TensorContraction tree into an Operation tree
// whose matrix-multiply nodes always pair operands of equal filled
// span, inserting explicit tensor-expansion (identity-padding) nodes
// wherever a child's span is narrower than its parent's combined span.
package lower
