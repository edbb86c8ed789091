package norphone_test

import (
	"testing"

	"github.com/aviklund/textdist/norphone"
	"github.com/stretchr/testify/assert"
)

// TestEncode_ReferenceVectors pins the reference implementation's
// documented codes.
func TestEncode_ReferenceVectors(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"Hansen", "HNSN"},
		{"Larsen", "LRSN"},
		{"Aagaard", "ÅKRT"},
		{"Braaten", "BRTN"},
		{"Sandvik", "SNVK"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, norphone.Encode(tc.word), "Encode(%q)", tc.word)
	}
}

// TestEncode_SoundsAlikeCollide verifies spelling variants of the same
// name share a code.
func TestEncode_SoundsAlikeCollide(t *testing.T) {
	assert.Equal(t, norphone.Encode("Hansen"), norphone.Encode("Hanssen"))
	assert.Equal(t, norphone.Encode("Karlsen"), norphone.Encode("Carlsen"))
	assert.Equal(t, "KRLSN", norphone.Encode("Carlsen"))
}

// TestEncode_CaseInsensitive verifies casing never changes the code.
func TestEncode_CaseInsensitive(t *testing.T) {
	assert.Equal(t, norphone.Encode("AAGAARD"), norphone.Encode("aagaard"))
}

// TestEncode_FinalD verifies the word-final ending rules: DT→T and
// vowel+D dropped.
func TestEncode_FinalD(t *testing.T) {
	assert.Equal(t, "SKMT", norphone.Encode("Schmidt"), "final DT codes as T")
	assert.Equal(t, norphone.Encode("Aagaard"), norphone.Encode("Aagaart"),
		"RD keeps the D→T coding, no vowel before final D")
}

// TestEncode_Empty verifies the empty input yields an empty code.
func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", norphone.Encode(""))
}
