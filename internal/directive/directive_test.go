package directive

import (
	"errors"
	"testing"
)

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		expected Request
	}{
		{
			name:     "empty arguments",
			args:     "",
			expected: Request{StringsEnum: "Strings"},
		},
		{
			name:     "quoted prefix",
			args:     `prefix: "about"`,
			expected: Request{Prefix: "about", HasPrefix: true, StringsEnum: "Strings"},
		},
		{
			name: "all recognized arguments",
			args: `prefix: "about", separator: "_", table: "UITexts", bundle: appBundle, stringsEnum: "Keys"`,
			expected: Request{
				Prefix:       "about",
				HasPrefix:    true,
				Separator:    "_",
				HasSeparator: true,
				Table:        `"UITexts"`,
				HasTable:     true,
				Bundle:       "appBundle",
				HasBundle:    true,
				StringsEnum:  "Keys",
			},
		},
		{
			name:     "table passes through as expression text",
			args:     `table: someTable()`,
			expected: Request{Table: "someTable()", HasTable: true, StringsEnum: "Strings"},
		},
		{
			name:     "bundle dot expression",
			args:     `bundle: .main`,
			expected: Request{Bundle: ".main", HasBundle: true, StringsEnum: "Strings"},
		},
		{
			name:     "unrecognized arguments ignored",
			args:     `prefix: "about", color: "red", futureOption: 42`,
			expected: Request{Prefix: "about", HasPrefix: true, StringsEnum: "Strings"},
		},
		{
			name:     "comma inside quoted value",
			args:     `prefix: "a,b", bundle: pick(first, second)`,
			expected: Request{Prefix: "a,b", HasPrefix: true, Bundle: "pick(first, second)", HasBundle: true, StringsEnum: "Strings"},
		},
		{
			name:     "unquoted stringsEnum kept verbatim",
			args:     `stringsEnum: Keys`,
			expected: Request{StringsEnum: "Keys"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.args, err)
			}
			if *req != tt.expected {
				t.Errorf("Parse(%q) = %+v, expected %+v", tt.args, *req, tt.expected)
			}
		})
	}
}

func TestParseInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{name: "missing colon", args: `prefix "about"`},
		{name: "empty value", args: `prefix:`},
		{name: "bare word", args: `about`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			if !errors.Is(err, ErrInvalidArguments) {
				t.Errorf("Parse(%q) = %v, expected ErrInvalidArguments", tt.args, err)
			}
		})
	}
}

func TestParseInvalidSeparator(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{name: "identifier", args: `separator: underscore`},
		{name: "number", args: `separator: 2`},
		{name: "backticks", args: "separator: `.`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			if !errors.Is(err, ErrInvalidSeparator) {
				t.Errorf("Parse(%q) = %v, expected ErrInvalidSeparator", tt.args, err)
			}
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		caseName string
		expected string
	}{
		{
			name:     "no prefix uses bare name",
			req:      Request{},
			caseName: "title",
			expected: "title",
		},
		{
			name:     "prefix with default separator",
			req:      Request{Prefix: "about", HasPrefix: true},
			caseName: "title",
			expected: "about.title",
		},
		{
			name:     "prefix with explicit separator",
			req:      Request{Prefix: "about", HasPrefix: true, Separator: "_", HasSeparator: true},
			caseName: "title",
			expected: "about_title",
		},
		{
			name:     "separator without prefix never inserted",
			req:      Request{Separator: "_", HasSeparator: true},
			caseName: "title",
			expected: "title",
		},
		{
			name:     "escaped reserved word",
			req:      Request{Prefix: "about", HasPrefix: true},
			caseName: "`class`",
			expected: "about.class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Key(tt.caseName, "."); got != tt.expected {
				t.Errorf("Key(%q) = %q, expected %q", tt.caseName, got, tt.expected)
			}
		})
	}
}

func TestNeedsSeparatorNotice(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		expected bool
	}{
		{name: "prefix without separator", req: Request{HasPrefix: true}, expected: true},
		{name: "prefix with separator", req: Request{HasPrefix: true, HasSeparator: true}, expected: false},
		{name: "no prefix", req: Request{}, expected: false},
		{name: "separator only", req: Request{HasSeparator: true}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.NeedsSeparatorNotice(); got != tt.expected {
				t.Errorf("NeedsSeparatorNotice() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "title", expected: "title"},
		{input: "`class`", expected: "class"},
		{input: "`", expected: "`"},
		{input: "``", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Unescape(tt.input); got != tt.expected {
				t.Errorf("Unescape(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
