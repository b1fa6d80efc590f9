// Package kernel contains the shared value objects of the domain model:
// identifiers (UUID, Phone) and fixed-precision quantities (Money, Percent,
// Quantity).
//
// All types in this package are immutable value objects. Their zero values are
// invalid and every instance must be created through a constructor function;
// Validate reports whether a value was properly constructed. Monetary and
// percentage arithmetic is performed on fixed-precision decimals so totals,
// discounts, and zone costs never accumulate binary floating-point drift.
package kernel
