// Package contract reduces a tensor network to a forest of contracted
// nodes by repeatedly fusing the lowest-rank contractible edges, a
// maximal independent set per round, until no contractible edge
// remains.
package contract
