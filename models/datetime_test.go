package models

import (
	"testing"
	"time"
)

func TestParsePubDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "semicolon separated time",
			input: "2020-07-08-20;50;43",
			want:  time.Date(2020, 7, 8, 20, 50, 43, 0, time.UTC),
		},
		{
			name:    "colon separator rejected",
			input:   "2020-07-08-20:50:43",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "iso 8601 rejected",
			input:   "2020-07-08T20:50:43Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePubDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePubDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParsePubDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseModDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "colon separated time",
			input: "2020-07-09-08:12:00",
			want:  time.Date(2020, 7, 9, 8, 12, 0, 0, time.UTC),
		},
		{
			name:    "semicolon separator rejected",
			input:   "2020-07-09-08;12;00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseModDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseModDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
