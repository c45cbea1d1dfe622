package shellparse

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"single word", "gamemoderun", []string{"gamemoderun"}},
		{"plain words", "mangohud --dlsym -q", []string{"mangohud", "--dlsym", "-q"}},
		{"surrounding whitespace", "  cmd arg \t ", []string{"cmd", "arg"}},
		{"collapsed separators", "cmd \t  arg1   arg2", []string{"cmd", "arg1", "arg2"}},
		{"double quoted word", `env "VAR=a b"`, []string{"env", "VAR=a b"}},
		{"single quoted word", `echo 'a b'`, []string{"echo", "a b"}},
		{"quotes glued to word", `--opt="a b"c`, []string{"--opt=a bc"}},
		{"empty quoted argument", `cmd "" next`, []string{"cmd", "", "next"}},
		{"escaped space", `arg\ with\ spaces`, []string{"arg with spaces"}},
		{"escape inside double quotes", `"a \"b\" \\ c"`, []string{`a "b" \ c`}},
		{"literal backslash in double quotes", `"a\b"`, []string{`a\b`}},
		{"single quotes are literal", `'a \ b $x'`, []string{`a \ b $x`}},
		{"nested quote kinds", `python -c "print('hi')"`, []string{"python", "-c", "print('hi')"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if err != nil {
				t.Fatalf("Split(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unclosed double quote", `cmd "arg`, ErrUnclosedQuote},
		{"unclosed single quote", `cmd 'arg`, ErrUnclosedQuote},
		{"trailing backslash", `cmd arg\`, ErrTrailingEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Split(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nothing", nil, ""},
		{"plain words", []string{"wine", "game.exe"}, "wine game.exe"},
		{"spaces need quoting", []string{"a b"}, "'a b'"},
		{"empty argument", []string{"cmd", ""}, "cmd ''"},
		{"single quote forces double quoting", []string{"it's"}, `"it's"`},
		{"specials escaped in double quotes", []string{`a'$b`}, `"a'\$b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.args); got != tt.want {
				t.Errorf("Join(%#v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	vectors := [][]string{
		{"wine", "C:\\Program Files\\game.exe"},
		{"env", "VAR=a b", "--flag"},
		{"weird", `mix "of' things`, "$HOME", "`tick`"},
		{""},
	}

	for _, argv := range vectors {
		got, err := Split(Join(argv))
		if err != nil {
			t.Fatalf("round trip of %#v failed: %v", argv, err)
		}
		if !reflect.DeepEqual(got, argv) {
			t.Errorf("round trip of %#v = %#v", argv, got)
		}
	}
}
