// Package tensor builds the tensor network a circuit decomposes into:
// one leaf node per gate, wired together by edges that carry the shared
// lanes two nodes communicate through. The network is the input to the
// contract package.
package tensor
