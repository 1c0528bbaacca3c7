// Package wire is the primitive codec table used by wirestruct.
//
// Every supported primitive has a fixed width. Single-byte integers and
// opaque byte blocks are order-free and get a FixedCodec directly. Multi-byte
// integers get an OrderedCodec that must be bound to little- or big-endian
// once, when the schema is built:
//
//	Type      Width  Order
//	──────────────────────
//	u8/i8     1      none
//	u16/i16   2      required
//	u32/i32   4      required
//	u64/i64   8      required
//	[N]byte   N      none
//
// Codecs do no bounds checking; callers hand them slices of exactly Width
// bytes. Length validation happens once per record through CheckLen.
//
// The package also defines the interfaces generated record types satisfy
// and small io helpers around them.
package wire
