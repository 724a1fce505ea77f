package utils

import (
	"testing"
)

func TestParseModelJSON(t *testing.T) {
	type record struct {
		Intent string `json:"intent"`
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "pure JSON",
			input: `{"intent": "general_question"}`,
			want:  "general_question",
		},
		{
			name:  "fenced json block",
			input: "```json\n{\"intent\": \"specific_availability\"}\n```",
			want:  "specific_availability",
		},
		{
			name:  "bare fence",
			input: "```\n{\"intent\": \"general_question\"}\n```",
			want:  "general_question",
		},
		{
			name:  "JSON with surrounding prose",
			input: `Sure! Here is the classification: {"intent": "general_question"} Hope that helps.`,
			want:  "general_question",
		},
		{
			name:  "braces inside string literals",
			input: `{"intent": "general_question", "note": "weird {brace} inside"}`,
			want:  "general_question",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no JSON at all",
			input:   "the user is asking about availability",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			input:   `{"intent": "general`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got record
			err := ParseModelJSON(tt.input, &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseModelJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Intent != tt.want {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.want)
			}
		})
	}
}
