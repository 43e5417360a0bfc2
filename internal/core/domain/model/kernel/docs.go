// Package kernel contains the shared value objects of the parcel relay domain:
// identifiers and geographic coordinates. These types are immutable, validate
// themselves on construction, and are reused by every aggregate.
package kernel
