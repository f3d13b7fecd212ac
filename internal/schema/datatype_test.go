package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsmelon/tsql-go/internal/rawast"
)

// TestDataTypeVariantCount enforces the invariant promised on DataType:
// exactly two fewer variants than rawast.RawDataTypeKind (Unknown and
// ForeignKeyTable never survive resolution).
func TestDataTypeVariantCount(t *testing.T) {
	const rawCount = int(rawast.KindForeignKeyTable) + 1
	const resolvedCount = int(DTDecimal) + 1
	assert.Equal(t, rawCount-2, resolvedCount)
}

func TestResolveDataTypePrimitives(t *testing.T) {
	cases := []struct {
		name string
		raw  rawast.RawDataType
		want DataTypeKind
	}{
		{"int", rawast.RawDataType{Kind: rawast.KindInt}, DTInt},
		{"bool", rawast.RawDataType{Kind: rawast.KindBool}, DTBool},
		{"bigint", rawast.RawDataType{Kind: rawast.KindBigInt}, DTBigInt},
		{"date", rawast.RawDataType{Kind: rawast.KindDate}, DTDate},
		{"datetime", rawast.RawDataType{Kind: rawast.KindDateTime}, DTDateTime},
		{"time", rawast.RawDataType{Kind: rawast.KindTime}, DTTime},
		{"double", rawast.RawDataType{Kind: rawast.KindDouble}, DTDouble},
		{"float", rawast.RawDataType{Kind: rawast.KindFloat}, DTFloat},
		{"uuid", rawast.RawDataType{Kind: rawast.KindUuid}, DTUuid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveDataType(tc.raw, "t", "f")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Kind)
		})
	}
}

func TestResolveDataTypeParameterized(t *testing.T) {
	vc, err := resolveDataType(rawast.RawDataType{Kind: rawast.KindVarChar, VarCharLen: 255}, "t", "f")
	require.NoError(t, err)
	assert.Equal(t, DTVarChar, vc.Kind)
	assert.EqualValues(t, 255, vc.VarCharLen)

	ch, err := resolveDataType(rawast.RawDataType{Kind: rawast.KindChar, CharLen: 4}, "t", "f")
	require.NoError(t, err)
	assert.Equal(t, DTChar, ch.Kind)
	assert.EqualValues(t, 4, ch.CharLen)

	tx, err := resolveDataType(rawast.RawDataType{Kind: rawast.KindText, TextLen: 1024}, "t", "f")
	require.NoError(t, err)
	assert.Equal(t, DTText, tx.Kind)
	assert.EqualValues(t, 1024, tx.TextLen)

	dec, err := resolveDataType(rawast.RawDataType{Kind: rawast.KindDecimal, DecimalPrecision: 10, DecimalScale: 2}, "t", "f")
	require.NoError(t, err)
	assert.Equal(t, DTDecimal, dec.Kind)
	assert.EqualValues(t, 10, dec.DecimalPrecision)
	assert.EqualValues(t, 2, dec.DecimalScale)
}

func TestResolveDataTypeRejectsSentinels(t *testing.T) {
	_, err := resolveDataType(rawast.RawDataType{Kind: rawast.KindUnknown}, "t", "f")
	require.Error(t, err)

	_, err = resolveDataType(rawast.RawDataType{Kind: rawast.KindForeignKeyTable, ForeignKeyTableName: "other"}, "t", "f")
	require.Error(t, err)
}
