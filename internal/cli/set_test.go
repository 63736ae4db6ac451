package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPromptCounts(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedErr      error
		expectedPrimary  int
		expectedOverflow int
		expectedPrompts  int
	}{
		{
			name:             "valid first try",
			input:            "60/255\n",
			expectedPrimary:  60,
			expectedOverflow: 255,
			expectedPrompts:  1,
		},
		{
			name:             "retries after invalid input",
			input:            "60\nabc/1\n12/3\n",
			expectedPrimary:  12,
			expectedOverflow: 3,
			expectedPrompts:  3,
		},
		{
			name:            "cancel",
			input:           "cancel\n",
			expectedErr:     errCancelled,
			expectedPrompts: 1,
		},
		{
			name:            "end of input",
			input:           "",
			expectedErr:     errCancelled,
			expectedPrompts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			primary, overflow, err := promptCounts(strings.NewReader(tt.input), &out)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("promptCounts() error = %v, want %v", err, tt.expectedErr)
				}
			} else if err != nil {
				t.Fatalf("promptCounts() error: %v", err)
			} else if primary != tt.expectedPrimary || overflow != tt.expectedOverflow {
				t.Errorf("promptCounts() = %d/%d, want %d/%d", primary, overflow, tt.expectedPrimary, tt.expectedOverflow)
			}

			if got := strings.Count(out.String(), "Enter your waveplates"); got != tt.expectedPrompts {
				t.Errorf("prompts = %d, want %d", got, tt.expectedPrompts)
			}
		})
	}
}
