// Package bigint implements arbitrary-precision signed integers stored as
// base-10^6 limbs, with Karatsuba multiplication.
//
// Values are parsed from decimal strings with Parse, multiplied with
// Product (or a configured Multiplier) and rendered back with String.
// A BigInt is immutable: operations never modify their operands.
//
// Limbs are kept in a power-of-two count so that the recursive split in the
// Karatsuba multiplier always halves evenly.
package bigint
