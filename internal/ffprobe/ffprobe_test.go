package ffprobe

import (
	"testing"

	"github.com/smartcrf/smartcrf/internal/errors"
)

func TestParseBitrateOutput(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		wantBps   int64
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "plain decimal",
			output:    "1550000\n",
			wantBps:   1550000,
			wantFound: true,
		},
		{
			name:      "no trailing newline",
			output:    "128000",
			wantBps:   128000,
			wantFound: true,
		},
		{
			name:      "surrounding whitespace",
			output:    "  945000  \n",
			wantBps:   945000,
			wantFound: true,
		},
		{
			name:      "first line wins with multiple streams",
			output:    "1550000\n640000\n",
			wantBps:   1550000,
			wantFound: true,
		},
		{
			name:      "empty output means not found",
			output:    "",
			wantFound: false,
		},
		{
			name:      "blank line means not found",
			output:    "\n",
			wantFound: false,
		},
		{
			name:      "N/A means not found",
			output:    "N/A\n",
			wantFound: false,
		},
		{
			name:      "lowercase n/a means not found",
			output:    "n/a",
			wantFound: false,
		},
		{
			name:    "non-numeric is an error",
			output:  "garbage\n",
			wantErr: true,
		},
		{
			name:    "float is an error",
			output:  "1550000.5\n",
			wantErr: true,
		},
		{
			name:    "negative is an error",
			output:  "-1000\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bps, found, err := parseBitrateOutput([]byte(tt.output))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBitrateOutput(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.IsKind(err, errors.KindProbeParse) {
					t.Errorf("error kind = %v, want KindProbeParse", err)
				}
				return
			}
			if found != tt.wantFound {
				t.Errorf("found = %v, want %v", found, tt.wantFound)
			}
			if tt.wantFound && bps != tt.wantBps {
				t.Errorf("bps = %d, want %d", bps, tt.wantBps)
			}
		})
	}
}

func TestKbpsConversionTruncates(t *testing.T) {
	// Integer division: 1999 bps is 1 kbps, not 2.
	bps, found, err := parseBitrateOutput([]byte("1999\n"))
	if err != nil || !found {
		t.Fatalf("parseBitrateOutput() = (%d, %v, %v)", bps, found, err)
	}
	if kbps := int(bps / 1000); kbps != 1 {
		t.Errorf("kbps = %d, want 1", kbps)
	}
}
