package meta

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/plotprep/plotprep/errs"
)

func TestColumnMetadata_WithLabel(t *testing.T) {
	md, err := ColumnMetadata("MyLabel", "")
	require.NoError(t, err)
	require.Equal(t, "MyLabel", md.Label())
	require.Equal(t, "", md.Unit())
}

func TestColumnMetadata_WithLabelAndUnit(t *testing.T) {
	md, err := ColumnMetadata("ALabel", "m/s")
	require.NoError(t, err)
	require.Equal(t, "ALabel", md.Label())
	require.Equal(t, "m/s", md.Unit())
}

func TestColumnMetadata_InvalidLabel(t *testing.T) {
	for _, label := range []string{"", " ", "\t ", "\n"} {
		_, err := ColumnMetadata(label, "m/s")
		require.ErrorIs(t, err, errs.ErrBlankLabel)
		require.ErrorIs(t, err, errs.ErrDataPreparation)
	}
}

func TestMetadata_Validate_MissingLabel(t *testing.T) {
	md := Metadata{FieldUnit: "MyUnit"}
	require.ErrorIs(t, md.Validate(), errs.ErrBlankLabel)
}

func TestMetadata_Validate_UnknownField(t *testing.T) {
	md := Metadata{FieldLabel: "Label", Field(42): "a"}
	require.ErrorIs(t, md.Validate(), errs.ErrUnknownMetadataField)
}

func TestMetadata_Clone_Independent(t *testing.T) {
	md := MustColumnMetadata("Label", "kg")
	clone := md.Clone()
	clone[FieldUnit] = "g"
	require.Equal(t, "kg", md.Unit())
}

func TestField_String(t *testing.T) {
	require.Equal(t, "label", FieldLabel.String())
	require.Equal(t, "unit", FieldUnit.String())
	require.Equal(t, "unknown", Field(0).String())
}

func TestEncodeColumns_LowerCaseFieldKeys(t *testing.T) {
	blob, err := EncodeColumns(map[string]Metadata{
		"myvaluecolumn": MustColumnMetadata("My Value", "s"),
	})
	require.NoError(t, err)

	decoded := make(map[string]map[string]string)
	require.NoError(t, json.Unmarshal(blob, &decoded))
	require.Equal(t, map[string]map[string]string{
		"myvaluecolumn": {"label": "My Value", "unit": "s"},
	}, decoded)
}

func TestEncodeColumns_AbsentUnitBecomesEmpty(t *testing.T) {
	blob, err := EncodeColumns(map[string]Metadata{
		"col": {FieldLabel: "Only Label"},
	})
	require.NoError(t, err)

	decoded, err := DecodeColumns(blob)
	require.NoError(t, err)
	require.Equal(t, "", decoded["col"]["unit"])
	require.Equal(t, "Only Label", decoded["col"]["label"])
}

func TestDecodeColumns_Invalid(t *testing.T) {
	_, err := DecodeColumns([]byte("not json"))
	require.Error(t, err)
}
