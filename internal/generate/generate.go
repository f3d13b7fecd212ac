// Package generate produces deterministic dummy schema.Table fixtures for
// benchmarks and manual testing — seeded by an integer, never by wall-clock
// time or randomness, so the same seed always yields the same table
// (spec.md §1's "dummy-data generation... interface only", §9's design
// notes on the generator).
//
// Grounded on the original Rust implementation's lib/src/generate.rs
// (hash_number, u8s_to_string, generate_table). The `hmac-sha256` crate it
// depends on is a single-purpose primitive; Go's standard crypto/hmac +
// crypto/sha256 is the idiomatic equivalent every Go codebase reaches for
// here, so this one ambient primitive stays on stdlib (see DESIGN.md).
package generate

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"github.com/letsmelon/tsql-go/internal/schema"
)

// dummyDataTypes mirrors DataType::generate_dummy's fixed rotation: Int,
// Double, VarChar(100), Char(6), Uuid, cycling by number%len.
var dummyDataTypes = []schema.DataType{
	{Kind: schema.DTInt},
	{Kind: schema.DTDouble},
	{Kind: schema.DTVarChar, VarCharLen: 100},
	{Kind: schema.DTChar, CharLen: 6},
	{Kind: schema.DTUuid},
}

// hashNumber computes HMAC-SHA-256 keyed by number's little-endian 8-byte
// encoding, over an empty message — matching hmac_sha256::HMAC::new(key)
// .finalize() with no intervening update() call.
func hashNumber(number int) [32]byte {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, uint64(number))

	mac := hmac.New(sha256.New, key)
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// stringifyBytes maps each byte through `byte % 24 + 65` into an ASCII
// letter, deliberately excluding 'Y' and 'Z' — spec.md §9 flags this as a
// likely-unintentional but observable quirk of the reference and asks
// implementations to preserve it.
func stringifyBytes(bs []byte) string {
	out := make([]byte, len(bs))
	for i, b := range bs {
		out[i] = b%24 + 65
	}
	return string(out)
}

func hashNumberAndStringify(number int) string {
	hash := hashNumber(number)
	return stringifyBytes(hash[:])
}

// generateField produces one deterministic field, named and typed purely
// as a function of number.
func generateField(number int) schema.Field {
	name := hashNumberAndStringify(number)
	datatype := dummyDataTypes[number%len(dummyDataTypes)]
	return schema.Field{Name: name, Datatype: datatype}
}

// GenerateTable produces a deterministic dummy table with fieldsPerTable
// fields, seeded by counter. Unlike the reference generator — which picks
// fields.keys().next() on an unordered map as the primary key, a
// nondeterministic choice flagged as a bug in spec.md §9 — this picks the
// lexicographically smallest field name, which is well-defined regardless
// of map iteration order.
func GenerateTable(counter, fieldsPerTable int) *schema.Table {
	name := hashNumberAndStringify(counter)

	fields := make(map[string]schema.Field, fieldsPerTable)
	order := make([]string, 0, fieldsPerTable)

	for i := 0; i < fieldsPerTable; i++ {
		field := generateField(i + counter*100)
		fields[field.Name] = field
		order = append(order, field.Name)
	}

	sort.Strings(order)

	var primaryKey []string
	if len(order) > 0 {
		primaryKey = []string{order[0]}
	}

	return &schema.Table{
		Name:       name,
		FieldOrder: order,
		Fields:     fields,
		Extra:      schema.TableExtra{PrimaryKey: primaryKey},
	}
}
