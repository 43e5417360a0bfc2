// Package order contains the Order aggregate: one directed delivery leg of a
// parcel, claimable by exactly one courier.
//
// The order's lifecycle is classified into phases derived from its fields
// (Unclaimed, Claimed, Finished) rather than stored as a separate column, so
// the classification can never drift from the owner/started/finished data.
// Claim and Finish are the only state-changing operations; both validate the
// phase transition and the acting account before mutating anything.
package order
