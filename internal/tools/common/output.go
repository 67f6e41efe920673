package common

import (
	"encoding/json"
	"fmt"
	"os"
)

// CIResult is the one-shot status document the tools print under --ci,
// consumed by pipeline steps instead of the human-readable output.
type CIResult struct {
	OK      bool     `json:"ok"`
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func PrintCIResult(ok bool, title string, details []string, err error) {
	result := CIResult{OK: ok, Title: title, Details: details}
	if err != nil {
		result.Error = err.Error()
	}
	out, mErr := json.MarshalIndent(result, "", "  ")
	if mErr != nil {
		fmt.Fprintf(os.Stderr, "encode ci result: %v\n", mErr)
		return
	}
	fmt.Fprintln(os.Stdout, string(out))
}
