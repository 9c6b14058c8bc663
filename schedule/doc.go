// Package schedule linearises an operation tree into a Plan: a map of
// instructions keyed by a post-order-assigned id, plus the waiting and
// dependants bookkeeping a driver consults to pull ready work.
package schedule
