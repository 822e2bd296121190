package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/models"
)

func TestResolveSelection(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		input string
		want  SelectionKind
		index int
	}{
		{name: "first", n: 2, input: "1", want: SelectionChosen, index: 0},
		{name: "last", n: 2, input: "2", want: SelectionChosen, index: 1},
		{name: "surrounding spaces", n: 2, input: " 2\n", want: SelectionChosen, index: 1},
		{name: "zero", n: 2, input: "0", want: SelectionInvalid},
		{name: "past the end", n: 2, input: "3", want: SelectionInvalid},
		{name: "negative", n: 2, input: "-1", want: SelectionInvalid},
		{name: "not a number", n: 2, input: "abc", want: SelectionInvalid},
		{name: "empty", n: 2, input: "", want: SelectionInvalid},
		{name: "cancel", n: 2, input: "cancel", want: SelectionCancelled},
		{name: "cancel any case", n: 2, input: "  CANCEL ", want: SelectionCancelled},
		{name: "no candidates", n: 0, input: "1", want: SelectionInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSelection(tt.n, tt.input)
			assert.Equal(t, tt.want, got.Kind)
			switch tt.want {
			case SelectionChosen:
				assert.Equal(t, tt.index, got.Index)
			case SelectionInvalid:
				assert.NotEmpty(t, got.Reason)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	login := "alice123"
	views := []models.CredentialView{
		{ID: 10, ServiceName: "GitHub", LoginIdentifier: &login},
		{ID: 11, ServiceName: "GitHub"},
	}

	assert.Equal(t, []models.Candidate{
		{Index: 1, Label: "alice123"},
		{Index: 2, Label: models.NotAvailable},
	}, Candidates(views))

	assert.Empty(t, Candidates([]models.CredentialRecord{}))
}

func TestPickers(t *testing.T) {
	candidates := []models.Candidate{{Index: 1, Label: "a"}, {Index: 2, Label: "b"}}

	assert.Equal(t, Selection{Kind: SelectionChosen, Index: 1}, PickIndex(1)(candidates))
	assert.Equal(t, SelectionInvalid, PickIndex(2)(candidates).Kind)
	assert.Equal(t, SelectionCancelled, PickCancel()(candidates).Kind)
	assert.Equal(t, Selection{Kind: SelectionChosen, Index: 0}, PickFromInput("1")(candidates))
}
