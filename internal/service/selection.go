package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// CancelToken withdraws from a selection prompt.
const CancelToken = "cancel"

// SelectionKind tells how a selection prompt was answered.
type SelectionKind int

const (
	// SelectionInvalid asks the caller to prompt again.
	SelectionInvalid SelectionKind = iota
	SelectionChosen
	SelectionCancelled
)

// Selection is the outcome of resolving one answer to a selection prompt.
type Selection struct {
	Kind SelectionKind
	// Index is 0-based and only meaningful for SelectionChosen.
	Index int
	// Reason explains a SelectionInvalid answer.
	Reason string
}

// Picker chooses one of several candidates. It is consulted only when more
// than one record matches.
type Picker func(candidates []models.Candidate) Selection

type labeled interface {
	DisplayLogin() string
}

// Candidates numbers items from 1 and labels each with its login identifier
// or "N/A".
func Candidates[T labeled](items []T) []models.Candidate {
	candidates := make([]models.Candidate, 0, len(items))
	for i, item := range items {
		candidates = append(candidates, models.Candidate{Index: i + 1, Label: item.DisplayLogin()})
	}
	return candidates
}

// ResolveSelection interprets input as a 1-based index into n candidates or
// as the cancel token. Surrounding whitespace is ignored and the token is
// case-insensitive.
func ResolveSelection(n int, input string) Selection {
	trimmed := strings.TrimSpace(input)
	if strings.EqualFold(trimmed, CancelToken) {
		return Selection{Kind: SelectionCancelled}
	}

	choice, err := strconv.Atoi(trimmed)
	if err != nil {
		return Selection{
			Kind:   SelectionInvalid,
			Reason: fmt.Sprintf("enter a number between 1 and %d or %q", n, CancelToken),
		}
	}
	if choice < 1 || choice > n {
		return Selection{
			Kind:   SelectionInvalid,
			Reason: fmt.Sprintf("%d is out of range, choose between 1 and %d", choice, n),
		}
	}

	return Selection{Kind: SelectionChosen, Index: choice - 1}
}

// PickFromInput resolves a typed answer against the candidates.
func PickFromInput(input string) Picker {
	return func(candidates []models.Candidate) Selection {
		return ResolveSelection(len(candidates), input)
	}
}

// PickIndex chooses the candidate at the 0-based index i.
func PickIndex(i int) Picker {
	return func(candidates []models.Candidate) Selection {
		return ResolveSelection(len(candidates), strconv.Itoa(i+1))
	}
}

// PickCancel withdraws from the selection.
func PickCancel() Picker {
	return func([]models.Candidate) Selection {
		return Selection{Kind: SelectionCancelled}
	}
}
