// Package interop exercises bitcode's columnar output against
// general-purpose compressors. It does not participate in the wire format
// at all — encoded bitcode bytes never carry a compression marker, and
// nothing in this repository compresses on an encoder's behalf — it exists
// to make testable the claim that columnar layout is friendlier to
// downstream compression than an equivalent row-major layout, by actually
// running real compressors over both and comparing sizes.
package interop
