// Package decimal provides a fixed point base 10 number with nine fractional
// digits.
//
// The equation for a decimal number is:
//
//  number = units + billionths * 10^-9
//
// Where units is a signed 32-bit whole number and billionths is a signed
// fraction with magnitude below 10^9. Both parts always carry the same sign
// (or one of them is zero). For example:
//
//   1.5         = units 1,  billionths 500_000_000
//  -0.000000001 = units 0,  billionths -1
//  -2.25        = units -2, billionths -250_000_000
//
// The range is therefore ±2_147_483_647.999_999_999 with a resolution of
// 0.000_000_001.
//
// Normalization
//
// Every constructor normalizes its input: fractional units are moved into
// billionths, billionths are rounded half away from zero, whole units are
// carried out of billionths, units wrap around at 32 bits, and finally the
// signs are aligned. Non-finite input (±Inf, NaN) collapses to Zero.
//
// Arithmetic never fails. Results whose units exceed 32 bits wrap around the
// same way normalization does.
//
// Multiplication
//
// Products are computed by long multiplication in base 1000. Each operand is
// split into six digit groups:
//
//  |  units   |  units   |  units   | billionths | billionths | billionths |
//  |----------|----------|----------|------------|------------|------------|
//  | millions | thousands|   ones   |  10^-3     |   10^-6    |   10^-9    |
//  | 0..2147  | 0..999   | 0..999   | 0..999     | 0..999     | 0..999     |
//
// The 36 partial products are accumulated into eleven output groups with
// explicit carries, so no intermediate value exceeds 64 bits. The three
// groups below 10^-9 are rounded half away from zero into the result.
//
// Encoding
//
// The binary layout is one sign byte followed by the big-endian magnitude of
// |units| * 10^9 + |billionths|:
//
//  | 0    | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 |
//  |------|-------------------------------|
//  | sign | magnitude (uint64)            |
//  |------|-------------------------------|
//
// The sign byte is 0xff (-1) for negative, 0x00 for zero and 0x01 for
// positive values.
//
// Extended products (see MulBytesExtended) use the same layout with a 13 byte
// magnitude counted in 10^-18:
//
//  | 0    | 1 | 2 | ... | 12 | 13 |
//  |------|----------------------|
//  | sign | magnitude (104 bits) |
//  |------|----------------------|
//
// Examples
//
// 1.5
//
//  01 00 00 00 00 59 68 2f 00
//
// -0.000000001
//
//  ff 00 00 00 00 00 00 00 01
//
package decimal
