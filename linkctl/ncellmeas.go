package linkctl

import (
	"fmt"

	"github.com/MirkoCovizzi/atparser"
)

// NCellMeasSearchType mirrors the search-type parameter of
// AT%NCELLMEAS=.
type NCellMeasSearchType int

const (
	NCellMeasDefault        NCellMeasSearchType = 0
	NCellMeasComplete       NCellMeasSearchType = 1
	NCellMeasComplete1s     NCellMeasSearchType = 2
	NCellMeasComplete3s     NCellMeasSearchType = 3
	NCellMeasComplete6s     NCellMeasSearchType = 4
	NCellMeasAdvancedLight  NCellMeasSearchType = 5
	NCellMeasAdvancedNormal NCellMeasSearchType = 6
)

// FormatNCellMeasStart builds the AT%NCELLMEAS= command for searchType.
func FormatNCellMeasStart(searchType NCellMeasSearchType) string {
	return fmt.Sprintf("AT%%NCELLMEAS=%d", searchType)
}

// FormatNCellMeasCancel builds the AT%NCELLMEAS=2 cancel command.
func FormatNCellMeasCancel() string { return "AT%NCELLMEAS=2" }

// NCellMeasResult is a partial decode of a %NCELLMEAS result
// notification: the current cell, plus a count of neighbor entries in
// the response's variable-width tail (see SPEC_FULL.md §4.4 for why
// the tail isn't decoded per-neighbor).
type NCellMeasResult struct {
	Status        int
	CellID        string
	TAC           string
	NeighborCount int
}

// ParseNCellMeas decodes a %NCELLMEAS result notification's tokens.
// tokens[0] is the NOTIF header; tokens[1] is <status>; when status
// indicates success, <cell_id> and <tac> follow as quoted strings, and
// every remaining ARRAY-or-subparam-shaped token in the tail is counted
// as one neighbor entry.
func ParseNCellMeas(tokens []atparser.Token) (*NCellMeasResult, error) {
	if len(tokens) < 2 || tokens[0].Type != atparser.Notif || string(tokens[0].Payload()) != "%NCELLMEAS" {
		return nil, fmt.Errorf("linkctl: not a %%NCELLMEAS notification")
	}
	status, err := intField(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("linkctl: %%NCELLMEAS <status>: %w", err)
	}
	res := &NCellMeasResult{Status: status}
	if status != 0 || len(tokens) < 4 {
		return res, nil
	}
	res.CellID = stringField(tokens[2])
	res.TAC = stringField(tokens[3])
	res.NeighborCount = len(tokens) - 4
	return res, nil
}
