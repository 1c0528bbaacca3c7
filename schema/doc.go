// Package schema compiles record declarations into fixed byte layouts.
//
// A record is an ordered list of fields. Each field is a primitive from the
// wire package or another record. Build resolves every field (checking its
// byte-order directive), then assigns offsets in declaration order:
//
//	field i starts where field i-1 ends
//	Len() == sum of all field widths
//
// No alignment or padding is ever inserted; the wire layout mirrors the
// declaration exactly. Byte-order rules:
//
//   - multi-byte integers need exactly one of le/be
//   - le and be together fail for any field type
//   - a marker on an order-free field (u8, i8, byte block, nested record)
//     is ignored and reported through Field.IgnoredOrder
//
// A Schema can be interpreted directly with Decode/Encode over Record values,
// and it is what the wirestruct code generators consume to emit typed
// encoders and decoders.
package schema
