package menu

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestPrompterString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantWarns int
	}{
		{name: "returns first non-blank line", input: "Vanilla\n", want: "Vanilla"},
		{name: "keeps surrounding spaces", input: "  Vanilla \n", want: "  Vanilla "},
		{name: "re-prompts on blank lines", input: "\n   \nMango\n", want: "Mango", wantWarns: 2},
		{name: "strips CRLF", input: "Soy\r\n", want: "Soy"},
		{name: "accepts a final line without newline", input: "Nuts", want: "Nuts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			got, err := p.String("Name: ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantWarns, strings.Count(out.String(), "Input cannot be empty. Please try again."))
		})
	}
}

func TestPrompterString_EOF(t *testing.T) {
	p, _ := newTestPrompter("\n")
	_, err := p.String("Name: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompterInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []IntOption
		want     int
		wantWarn string
	}{
		{name: "parses an integer", input: "42\n", want: 42},
		{name: "trims whitespace", input: " 7 \n", want: 7},
		{name: "accepts negatives without bounds", input: "-3\n", want: -3},
		{
			name:     "re-prompts on non-integers",
			input:    "abc\n4.5\n5\n",
			want:     5,
			wantWarn: "Invalid input! Please enter an integer.",
		},
		{
			name:     "enforces min and max",
			input:    "0\n11\n10\n",
			opts:     []IntOption{Min(1), Max(10)},
			want:     10,
			wantWarn: "Please enter a value between 1 and 10.",
		},
		{
			name:     "enforces min only",
			input:    "-1\n0\n",
			opts:     []IntOption{Min(0)},
			want:     0,
			wantWarn: "Please enter a value of at least 0.",
		},
		{
			name:     "enforces max only",
			input:    "100\n99\n",
			opts:     []IntOption{Max(99)},
			want:     99,
			wantWarn: "Please enter a value of at most 99.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			got, err := p.Int("Quantity: ", tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.wantWarn != "" {
				assert.Contains(t, out.String(), tt.wantWarn)
			}
		})
	}
}

func TestPrompterSeasonal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      bool
		wantWarns int
	}{
		{name: "1 means seasonal", input: "1\n", want: true},
		{name: "0 means not seasonal", input: "0\n", want: false},
		{name: "rejects anything else", input: "yes\n2\n 1\n1\n", want: true, wantWarns: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			got, err := p.Seasonal("Is Seasonal? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantWarns,
				strings.Count(out.String(), "Invalid input! Please enter 1 for seasonal or 0 for non-seasonal."))
		})
	}
}
